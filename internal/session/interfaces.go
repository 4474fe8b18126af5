package session

import (
	"context"

	"github.com/convdesk/convdesk/internal/api"
	"github.com/convdesk/convdesk/internal/model"
	"github.com/convdesk/convdesk/internal/progress"
)

// ConvertFunc performs one conversion request against the remote service.
// Forms supply it bound to their media type; the orchestrator calls it
// exactly once per attempt and passes the upload-progress hook through opts.
type ConvertFunc func(ctx context.Context, session model.ConversionSession, opts api.ConvertOptions) (*model.ConversionResult, error)

// Subscriber is the progress channel surface the orchestrator needs
type Subscriber interface {
	Subscribe(sessionID string, handler progress.Handler) error
	Close()
}

// HostCapability is the optional local-save bridge offered by the desktop
// host. Call sites receive nil when the capability is absent and fall back
// to browser downloads.
type HostCapability interface {
	// DownloadFile fetches url into directory/filename and returns the
	// final path
	DownloadFile(ctx context.Context, url, directory, filename string) (string, error)

	// ShowItemInFolder reveals the saved file in the system file manager
	ShowItemInFolder(path string) error
}

// Orchestration defines the command surface exposed to every form
type Orchestration interface {
	SetUpdateCallback(func(model.ConversionSession))
	Session() model.ConversionSession
	SelectFile(file model.InputFile)
	SelectBatch(batch *model.Batch)
	SetOutputFormat(format string)
	SetCustomFilename(name string)
	SetOutputDirectory(dir string)
	Convert(ctx context.Context, fn ConvertFunc, params map[string]string)
	Download(ctx context.Context)
	Reset()
}
