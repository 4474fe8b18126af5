package session

import (
	"time"

	"github.com/convdesk/convdesk/internal/model"
)

// eventKind identifies the asynchronous occurrence being applied to a session
type eventKind int

const (
	// eventResponse is the synchronous conversion response. It governs the
	// first transition out of Uploading.
	eventResponse eventKind = iota

	// eventChannel is a progress channel message. It governs every
	// transition after the session entered Converting.
	eventChannel

	// eventError is a thrown conversion error (network failure, malformed
	// response). It terminates the attempt from any busy state.
	eventError
)

// event is one input to the reducer
type event struct {
	kind     eventKind
	result   *model.ConversionResult
	progress *model.ProgressEvent
	errMsg   string
}

// reduce applies one event to a session and returns the next session state.
// All precedence between the synchronous response and the asynchronous
// channel is enforced here: the response only acts while Uploading, channel
// events only act while Converting and only for the bound session identifier.
// Events that do not apply leave the session unchanged.
func reduce(s model.ConversionSession, ev event) model.ConversionSession {
	switch ev.kind {
	case eventResponse:
		if s.Status != model.StatusUploading || ev.result == nil {
			return s
		}
		return applyResponse(s, ev.result)

	case eventChannel:
		if s.Status != model.StatusConverting || ev.progress == nil {
			return s
		}
		if ev.progress.SessionID != s.ID {
			return s
		}
		return applyChannelEvent(s, ev.progress)

	case eventError:
		if !s.Status.IsBusy() {
			return s
		}
		s.Status = model.StatusFailed
		s.Error = ev.errMsg
		s.DownloadURL = ""
		s.UpdatedAt = time.Now()
		return s
	}
	return s
}

func applyResponse(s model.ConversionSession, result *model.ConversionResult) model.ConversionSession {
	s.ID = result.SessionID
	s.UpdatedAt = time.Now()

	switch model.StatusFromRemote(result.Status) {
	case model.StatusCompleted:
		if result.DownloadURL == "" {
			// A completed response without a locator is unusable
			s.Status = model.StatusFailed
			s.Error = Translate("conversion completed without a download link")
			return s
		}
		s.Status = model.StatusCompleted
		s.DownloadURL = result.DownloadURL
		s.Error = ""
	case model.StatusFailed:
		s.Status = model.StatusFailed
		s.Error = Translate(result.Error)
		s.DownloadURL = ""
	default:
		s.Status = model.StatusConverting
	}
	return s
}

func applyChannelEvent(s model.ConversionSession, ev *model.ProgressEvent) model.ConversionSession {
	s.UpdatedAt = time.Now()

	switch ev.Status {
	case model.RemoteStatusCompleted:
		s.Status = model.StatusCompleted
		s.Error = ""
		if ev.DownloadURL != "" {
			s.DownloadURL = ev.DownloadURL
		} else {
			s.DownloadURL = "/api/download/" + s.ID
		}
		s.Progress = &model.ProgressUpdate{Progress: ev.Progress, Message: ev.Message}
	case model.RemoteStatusFailed:
		s.Status = model.StatusFailed
		s.DownloadURL = ""
		if ev.Error != "" {
			s.Error = Translate(ev.Error)
		} else {
			s.Error = Translate(ev.Message)
		}
	default:
		// Non-terminal events strictly supersede prior progress values
		s.Progress = &model.ProgressUpdate{Progress: ev.Progress, Message: ev.Message}
	}
	return s
}
