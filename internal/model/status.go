package model

// SessionStatus represents the status of a conversion session
type SessionStatus string

const (
	// StatusIdle means no conversion has been started for the selected file
	StatusIdle SessionStatus = "Idle"

	// StatusUploading means the input file is being transferred to the service
	StatusUploading SessionStatus = "Uploading"

	// StatusConverting means the service accepted the upload and is processing it
	StatusConverting SessionStatus = "Converting"

	// StatusCompleted means the conversion finished and a download link is available
	StatusCompleted SessionStatus = "Completed"

	// StatusFailed means the conversion attempt ended with an error
	StatusFailed SessionStatus = "Failed"
)

// String returns the string representation of SessionStatus
func (ss SessionStatus) String() string {
	return string(ss)
}

// IsBusy returns true while an attempt is in flight. Forms disable their
// input controls in busy states.
func (ss SessionStatus) IsBusy() bool {
	return ss == StatusUploading || ss == StatusConverting
}

// IsTerminal returns true if the session reached a final outcome
func (ss SessionStatus) IsTerminal() bool {
	return ss == StatusCompleted || ss == StatusFailed
}

// Remote status identifiers reported by the conversion service. The wire
// format uses lower-case values.
const (
	RemoteStatusUploaded   = "uploaded"
	RemoteStatusQueued     = "queued"
	RemoteStatusConverting = "converting"
	RemoteStatusCompleted  = "completed"
	RemoteStatusFailed     = "failed"
)

// StatusFromRemote maps a remote status to the session status it implies
// while an attempt is in flight. Anything that is not terminal keeps the
// session in Converting.
func StatusFromRemote(remote string) SessionStatus {
	switch remote {
	case RemoteStatusCompleted:
		return StatusCompleted
	case RemoteStatusFailed:
		return StatusFailed
	default:
		return StatusConverting
	}
}
