package destination

import (
	"net/url"
	"strings"
)

// Mode is the outcome of destination resolution for a completed artifact.
type Mode string

const (
	// ModeLocalSave means the artifact is fetched into the chosen directory
	ModeLocalSave Mode = "local"

	// ModeBrowser means the artifact is handed to the system browser as a
	// plain download link
	ModeBrowser Mode = "browser"
)

// Fallback name used when sanitization leaves nothing usable
const fallbackFilename = "file"

// Request carries everything needed to decide where a completed artifact
// should go. Values are captured at completion time, not read from live
// session state.
type Request struct {
	Locator         string
	OutputDirectory string
	CustomFilename  string
	OutputFormat    string
}

// Resolution is the decision returned by Resolve.
type Resolution struct {
	Mode      Mode
	Directory string
	Filename  string
}

// Resolve decides between local auto-save and browser download. Local save
// requires both a chosen output directory and host capability; everything
// else falls back to the browser.
func Resolve(req Request, localSaveAvailable bool) Resolution {
	if !localSaveAvailable || req.OutputDirectory == "" {
		return Resolution{Mode: ModeBrowser}
	}

	filename := ""
	if req.CustomFilename != "" {
		filename = SanitizeFilename(req.CustomFilename)
		if req.OutputFormat != "" {
			filename += "." + req.OutputFormat
		}
	}
	if filename == "" || filename == fallbackFilename {
		filename = FilenameFromLocator(req.Locator)
	}

	return Resolution{
		Mode:      ModeLocalSave,
		Directory: req.OutputDirectory,
		Filename:  filename,
	}
}

// SanitizeFilename makes a user-supplied name safe to use as a single path
// component. Parent-directory sequences, path separators, NUL bytes and
// leading dots are removed; the result never escapes the target directory.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\x00", "")

	// Drop traversal sequences before separators are rewritten, so "../x"
	// cannot re-form from the replacement characters.
	for strings.Contains(name, "..") {
		name = strings.ReplaceAll(name, "..", "")
	}

	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.TrimLeft(name, ".")

	if name == "" {
		return fallbackFilename
	}
	return name
}

// FilenameFromLocator derives a filename from the last path segment of a
// download locator, stripping any query or fragment.
func FilenameFromLocator(locator string) string {
	if idx := strings.IndexAny(locator, "?#"); idx >= 0 {
		locator = locator[:idx]
	}
	locator = strings.TrimRight(locator, "/")
	if idx := strings.LastIndex(locator, "/"); idx >= 0 {
		locator = locator[idx+1:]
	}
	return SanitizeFilename(locator)
}

// AllowNavigation reports whether a download locator may be navigated to.
// Only path-absolute locators and absolute URLs on the service origin are
// allowed; anything else is treated as an open-redirect attempt.
func AllowNavigation(baseURL, locator string) bool {
	if locator == "" {
		return false
	}

	parsed, err := url.Parse(locator)
	if err != nil {
		return false
	}

	// Server-relative path: no scheme, no host, path starts with "/".
	// Protocol-relative locators ("//host/...") carry a host and fall
	// through to the origin comparison.
	if parsed.Scheme == "" && parsed.Host == "" {
		return strings.HasPrefix(parsed.Path, "/")
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	if parsed.Scheme != "" && parsed.Scheme != base.Scheme {
		return false
	}
	return parsed.Host == base.Host
}
