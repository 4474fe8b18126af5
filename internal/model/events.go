package model

// ConversionResult is the synchronous response returned by the conversion
// service once an upload has been received. It is authoritative for the
// first transition out of Uploading.
type ConversionResult struct {
	SessionID   string `json:"session_id"`
	Status      string `json:"status"`
	DownloadURL string `json:"download_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ProgressEvent is one message pushed over the progress channel for a
// session. Events arrive ordered per session; there is no replay, so a late
// subscriber may miss early events.
type ProgressEvent struct {
	SessionID   string `json:"session_id"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	Message     string `json:"message,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Valid reports whether the event payload is well formed. Malformed events
// are dropped by the channel and never reach the session.
func (pe *ProgressEvent) Valid() bool {
	if pe.Status == "" {
		return false
	}
	return pe.Progress >= 0 && pe.Progress <= 100
}

// IsTerminal reports whether the event concludes the session.
func (pe *ProgressEvent) IsTerminal() bool {
	return pe.Status == RemoteStatusCompleted || pe.Status == RemoteStatusFailed
}
