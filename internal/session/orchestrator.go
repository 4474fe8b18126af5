package session

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/convdesk/convdesk/internal/api"
	"github.com/convdesk/convdesk/internal/destination"
	"github.com/convdesk/convdesk/internal/model"
)

// DefaultAutoSaveDelay lets the UI settle before a completed artifact is
// fetched into the chosen directory.
const DefaultAutoSaveDelay = 800 * time.Millisecond

// Config wires an orchestrator to its collaborators. Host may be nil when
// the local-save capability is absent; the orchestrator then resolves every
// download to the browser.
type Config struct {
	Channel Subscriber
	Host    HostCapability
	BaseURL string

	// OpenBrowser navigates the system browser to a download link
	OpenBrowser func(rawURL string) error

	// Notify receives host-level notifications (auto-save outcomes, blocked
	// navigations). These never affect session state.
	Notify func(message string)

	// AutoSaveDelay defaults to DefaultAutoSaveDelay when zero
	AutoSaveDelay time.Duration

	// ConvertingTimeout forces a stuck Converting session to Failed after
	// this duration. Zero disables the timeout and the session may stay in
	// Converting indefinitely.
	ConvertingTimeout time.Duration

	// RevealOnSave opens the file manager on the saved artifact
	RevealOnSave bool
}

// Orchestrator owns the lifecycle of one conversion session per form
// instance. It issues the conversion request, merges upload progress and
// progress channel signals into one coherent status, and triggers the
// destination resolver on completion. Forms talk only to this type.
type Orchestrator struct {
	mu      sync.Mutex
	session model.ConversionSession

	// attemptID guards against results of an attempt that was superseded by
	// reset or a new file selection
	attemptID string

	cfg      Config
	onUpdate func(model.ConversionSession)
}

// NewOrchestrator creates an orchestrator with an Idle empty session
func NewOrchestrator(cfg Config) *Orchestrator {
	if cfg.AutoSaveDelay == 0 {
		cfg.AutoSaveDelay = DefaultAutoSaveDelay
	}
	now := time.Now()
	return &Orchestrator{
		cfg: cfg,
		session: model.ConversionSession{
			Status:    model.StatusIdle,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// SetUpdateCallback sets the callback function for session updates
func (o *Orchestrator) SetUpdateCallback(callback func(model.ConversionSession)) {
	o.mu.Lock()
	o.onUpdate = callback
	o.mu.Unlock()
}

// Session returns a snapshot of the current session
func (o *Orchestrator) Session() model.ConversionSession {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.session
}

// SelectFile replaces the session's input file. The session returns to Idle
// and every derived field is cleared; any previous subscription is detached.
func (o *Orchestrator) SelectFile(file model.InputFile) {
	o.mu.Lock()
	o.resetLocked()
	o.session.SelectedFile = &file
	o.mu.Unlock()

	o.cfg.Channel.Close()
	o.notifyUpdate()
}

// SelectBatch replaces the session's input with a batch of files
func (o *Orchestrator) SelectBatch(batch *model.Batch) {
	o.mu.Lock()
	o.resetLocked()
	o.session.Batch = batch
	o.mu.Unlock()

	o.cfg.Channel.Close()
	o.notifyUpdate()
}

// SetOutputFormat records the form-selected output format
func (o *Orchestrator) SetOutputFormat(format string) {
	o.mu.Lock()
	o.session.OutputFormat = format
	o.mu.Unlock()
}

// SetCustomFilename records the optional user-chosen artifact name
func (o *Orchestrator) SetCustomFilename(name string) {
	o.mu.Lock()
	o.session.CustomFilename = name
	o.mu.Unlock()
}

// SetOutputDirectory records the optional local auto-save directory
func (o *Orchestrator) SetOutputDirectory(dir string) {
	o.mu.Lock()
	o.session.OutputDirectory = dir
	o.mu.Unlock()
}

// Convert starts one conversion attempt. It is a no-op without an input
// file or while an attempt is already in flight; re-invocation after Failed
// opens a fresh attempt. The conversion function is called exactly once.
func (o *Orchestrator) Convert(ctx context.Context, fn ConvertFunc, params map[string]string) {
	o.mu.Lock()
	if !o.session.HasInput() || o.session.Status.IsBusy() {
		o.mu.Unlock()
		return
	}

	attempt := uuid.NewString()
	o.attemptID = attempt

	// A new attempt always obtains a fresh identifier
	o.session.ID = ""
	o.session.Status = model.StatusUploading
	o.session.Error = ""
	o.session.DownloadURL = ""
	o.session.Progress = nil
	o.session.UploadProgress = 0
	o.session.UpdatedAt = time.Now()
	snapshot := o.session
	o.mu.Unlock()

	o.notifyUpdate()

	go o.runAttempt(ctx, attempt, snapshot, fn, params)
}

func (o *Orchestrator) runAttempt(ctx context.Context, attempt string, snapshot model.ConversionSession, fn ConvertFunc, params map[string]string) {
	opts := api.ConvertOptions{
		OutputFormat: snapshot.OutputFormat,
		Params:       params,
		OnUploadProgress: func(percent int) {
			o.recordUploadProgress(attempt, percent)
		},
	}

	result, err := fn(ctx, snapshot, opts)
	if err != nil {
		o.apply(attempt, event{kind: eventError, errMsg: TranslateError(err)})
		return
	}
	o.apply(attempt, event{kind: eventResponse, result: result})
}

// recordUploadProgress stores the latest transfer percentage. The value is
// monotonic within one attempt and frozen once the session leaves Uploading.
func (o *Orchestrator) recordUploadProgress(attempt string, percent int) {
	o.mu.Lock()
	if o.attemptID != attempt || o.session.Status != model.StatusUploading {
		o.mu.Unlock()
		return
	}
	if percent < o.session.UploadProgress {
		o.mu.Unlock()
		return
	}
	if percent > 100 {
		percent = 100
	}
	o.session.UploadProgress = percent
	o.session.UpdatedAt = time.Now()
	o.mu.Unlock()

	o.notifyUpdate()
}

// apply runs the reducer under the lock and performs the side effects the
// resulting transition calls for.
func (o *Orchestrator) apply(attempt string, ev event) {
	o.mu.Lock()
	if o.attemptID != attempt {
		o.mu.Unlock()
		return
	}

	before := o.session.Status
	o.session = reduce(o.session, ev)
	after := o.session.Status
	snapshot := o.session
	o.mu.Unlock()

	if after == before && ev.kind != eventChannel {
		return
	}
	o.notifyUpdate()

	switch {
	case after == model.StatusConverting && before == model.StatusUploading:
		o.bindChannel(attempt, snapshot.ID)
		o.armConvertingTimeout(attempt, snapshot.ID)
	case after == model.StatusCompleted:
		o.cfg.Channel.Close()
		o.scheduleAutoSave(snapshot)
	case after == model.StatusFailed:
		o.cfg.Channel.Close()
	}
}

// bindChannel attaches the progress channel to the session identifier
// returned by the service. Subscription failures only cost live progress;
// they never fail the session.
func (o *Orchestrator) bindChannel(attempt, sessionID string) {
	if sessionID == "" {
		return
	}
	err := o.cfg.Channel.Subscribe(sessionID, func(ev model.ProgressEvent) {
		o.apply(attempt, event{kind: eventChannel, progress: &ev})
	})
	if err != nil {
		log.Printf("session %s: progress subscription unavailable: %v", sessionID, err)
	}
}

// armConvertingTimeout forces a stuck session to Failed when configured.
// With a zero timeout the session may stay in Converting indefinitely.
func (o *Orchestrator) armConvertingTimeout(attempt, sessionID string) {
	if o.cfg.ConvertingTimeout <= 0 {
		return
	}
	time.AfterFunc(o.cfg.ConvertingTimeout, func() {
		o.mu.Lock()
		expired := o.attemptID == attempt &&
			o.session.ID == sessionID &&
			o.session.Status == model.StatusConverting
		o.mu.Unlock()
		if expired {
			o.apply(attempt, event{kind: eventError, errMsg: Translate("timeout")})
		}
	})
}

// scheduleAutoSave fires the destination resolver after a short delay when
// an output directory was pre-selected. Inputs are captured by value here,
// so a later reset cannot corrupt the pending task. Failures surface as a
// host notification, never as a session transition.
func (o *Orchestrator) scheduleAutoSave(snapshot model.ConversionSession) {
	if snapshot.OutputDirectory == "" || snapshot.DownloadURL == "" {
		return
	}

	req := destination.Request{
		Locator:         snapshot.DownloadURL,
		OutputDirectory: snapshot.OutputDirectory,
		CustomFilename:  snapshot.CustomFilename,
		OutputFormat:    snapshot.OutputFormat,
	}

	time.AfterFunc(o.cfg.AutoSaveDelay, func() {
		o.saveArtifact(context.Background(), req)
	})
}

// saveArtifact resolves the destination and performs the local save or
// reports why it could not.
func (o *Orchestrator) saveArtifact(ctx context.Context, req destination.Request) {
	res := destination.Resolve(req, o.cfg.Host != nil)
	if res.Mode != destination.ModeLocalSave {
		return
	}

	path, err := o.cfg.Host.DownloadFile(ctx, o.absoluteURL(req.Locator), res.Directory, res.Filename)
	if err != nil {
		o.notify("Could not save the converted file: " + err.Error())
		return
	}
	o.notify("Saved " + res.Filename)

	if o.cfg.RevealOnSave {
		if err := o.cfg.Host.ShowItemInFolder(path); err != nil {
			log.Printf("failed to reveal %s: %v", path, err)
		}
	}
}

// Download delivers the completed artifact. With a chosen directory and a
// present host capability the file is saved locally; otherwise the locator
// is opened in the system browser. Locators that are neither path-absolute
// nor on the service origin are rejected.
func (o *Orchestrator) Download(ctx context.Context) {
	o.mu.Lock()
	snapshot := o.session
	o.mu.Unlock()

	if snapshot.DownloadURL == "" {
		return
	}

	req := destination.Request{
		Locator:         snapshot.DownloadURL,
		OutputDirectory: snapshot.OutputDirectory,
		CustomFilename:  snapshot.CustomFilename,
		OutputFormat:    snapshot.OutputFormat,
	}

	res := destination.Resolve(req, o.cfg.Host != nil)
	if res.Mode == destination.ModeLocalSave {
		o.saveArtifact(ctx, req)
		return
	}

	if !destination.AllowNavigation(o.cfg.BaseURL, snapshot.DownloadURL) {
		o.notify("Blocked download link pointing outside the conversion service.")
		return
	}
	if o.cfg.OpenBrowser == nil {
		return
	}
	if err := o.cfg.OpenBrowser(o.absoluteURL(snapshot.DownloadURL)); err != nil {
		o.notify("Could not open the download link: " + err.Error())
	}
}

// Reset clears the session back to Idle and detaches the progress channel.
// It is the only way to abandon an in-flight attempt.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	o.resetLocked()
	o.mu.Unlock()

	o.cfg.Channel.Close()
	o.notifyUpdate()
}

func (o *Orchestrator) resetLocked() {
	o.attemptID = ""
	now := time.Now()
	o.session = model.ConversionSession{
		Status:    model.StatusIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (o *Orchestrator) absoluteURL(locator string) string {
	if strings.HasPrefix(locator, "/") {
		return strings.TrimRight(o.cfg.BaseURL, "/") + locator
	}
	return locator
}

func (o *Orchestrator) notify(message string) {
	if o.cfg.Notify != nil {
		o.cfg.Notify(message)
	}
}

// notifyUpdate calls the update callback if set
func (o *Orchestrator) notifyUpdate() {
	o.mu.Lock()
	callback := o.onUpdate
	snapshot := o.session
	o.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}
