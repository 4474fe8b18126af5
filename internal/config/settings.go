package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/convdesk/convdesk/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL         = "conversion_server_url"
	KeyOutputDir         = "output_directory"
	KeyAutoSave          = "auto_save_enabled"
	KeyRevealOnSave      = "reveal_on_save"
	KeyLanguage          = "app_language"
	KeyConvertingTimeout = "converting_timeout_seconds"
)

// Default values
const (
	DefaultServerURL         = "https://convert.convdesk.app"
	DefaultAutoSave          = true
	DefaultRevealOnSave      = true
	DefaultLanguage          = "system"
	DefaultConvertingTimeout = 0 // disabled
	MaxConvertingTimeout     = int(2 * time.Hour / time.Second)
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the conversion service base URL
func (s *Settings) GetServerURL() string {
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the conversion service base URL
func (s *Settings) SetServerURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		url = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, url)
}

// GetOutputDirectory returns the configured auto-save directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/convdesk"
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the auto-save directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetAutoSaveEnabled returns whether completed conversions save automatically
func (s *Settings) GetAutoSaveEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoSave, DefaultAutoSave)
}

// SetAutoSaveEnabled sets whether completed conversions save automatically
func (s *Settings) SetAutoSaveEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoSave, enabled)
}

// GetRevealOnSave returns whether saved files open in the file manager
func (s *Settings) GetRevealOnSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnSave, DefaultRevealOnSave)
}

// SetRevealOnSave sets whether saved files open in the file manager
func (s *Settings) SetRevealOnSave(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnSave, reveal)
}

// GetConvertingTimeout returns how long a conversion may stay in progress
// before it is treated as failed. Zero means no timeout.
func (s *Settings) GetConvertingTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyConvertingTimeout)
	if seconds < 0 {
		return 0
	}
	if seconds > MaxConvertingTimeout {
		seconds = MaxConvertingTimeout
	}
	return time.Duration(seconds) * time.Second
}

// SetConvertingTimeout sets the in-progress timeout. Zero disables it.
func (s *Settings) SetConvertingTimeout(timeout time.Duration) {
	seconds := int(timeout / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	if seconds > MaxConvertingTimeout {
		seconds = MaxConvertingTimeout
	}
	s.app.Preferences().SetInt(KeyConvertingTimeout, seconds)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
