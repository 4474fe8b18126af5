package model

import (
	"path/filepath"
	"strings"
	"time"
)

// InputFile is the local artifact selected by the user for conversion.
type InputFile struct {
	Path string
	Name string
	Size int64 // size in bytes
}

// ProgressUpdate is the last remote-processing progress received for a
// session. It reflects conversion progress on the service, not upload
// transfer progress.
type ProgressUpdate struct {
	Progress int // 0 to 100
	Message  string
}

// ConversionSession represents one attempt to convert one file (or batch)
// from selection through terminal outcome.
type ConversionSession struct {
	ID             string // assigned by the service once a request is accepted
	Status         SessionStatus
	SelectedFile   *InputFile
	Batch          *Batch // set instead of SelectedFile on batch forms
	OutputFormat   string
	DownloadURL    string // set only in Completed
	Error          string // set only in Failed, already user-presentable
	Progress       *ProgressUpdate
	UploadProgress int // 0 to 100, transfer progress of the request body

	// User-supplied destination hints, never required for correctness
	CustomFilename  string
	OutputDirectory string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasInput reports whether the session holds something to convert.
func (cs *ConversionSession) HasInput() bool {
	if cs.SelectedFile != nil {
		return true
	}
	return cs.Batch != nil && len(cs.Batch.Files) > 0
}

// GetDisplayTitle returns the selected file name, batch summary, or a dash
// placeholder in order of preference
func (cs *ConversionSession) GetDisplayTitle() string {
	if cs.SelectedFile != nil && cs.SelectedFile.Name != "" {
		return cs.SelectedFile.Name
	}
	if cs.Batch != nil && len(cs.Batch.Files) > 0 {
		return cs.Batch.DisplayTitle()
	}
	return "—"
}

// OutputName derives the artifact name shown to the user for a completed
// session: the custom filename plus output format when one was entered,
// otherwise the last path segment of the download locator.
func (cs *ConversionSession) OutputName() string {
	if cs.CustomFilename != "" && cs.OutputFormat != "" {
		return cs.CustomFilename + "." + cs.OutputFormat
	}
	if cs.DownloadURL == "" {
		return ""
	}
	segment := cs.DownloadURL
	if idx := strings.IndexAny(segment, "?#"); idx >= 0 {
		segment = segment[:idx]
	}
	return filepath.Base(segment)
}
