package ui

import (
	"context"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/convdesk/convdesk/internal/api"
	"github.com/convdesk/convdesk/internal/config"
	"github.com/convdesk/convdesk/internal/model"
	"github.com/convdesk/convdesk/internal/session"
)

// ConvertForm is one conversion form bound to a single media type. Each form
// owns its orchestrator and shows exactly one session at a time.
type ConvertForm struct {
	window       fyne.Window
	mediaType    model.MediaType
	orch         session.Orchestration
	client       *api.Client
	settings     *config.Settings
	localization *Localization

	batch *model.Batch

	// UI components
	fileBtn       *widget.Button
	convertBtn    *widget.Button
	downloadBtn   *widget.Button
	resetBtn      *widget.Button
	fileLabel     *widget.Label
	statusLabel   *widget.Label
	messageLabel  *widget.Label
	formatSelect  *widget.Select
	filenameEntry *widget.Entry
	uploadBar     *widget.ProgressBar
	convertBar    *widget.ProgressBar

	content *fyne.Container
}

// NewConvertForm creates a conversion form for the given media type
func NewConvertForm(window fyne.Window, mediaType model.MediaType, orch session.Orchestration, client *api.Client, settings *config.Settings, localization *Localization) *ConvertForm {
	f := &ConvertForm{
		window:       window,
		mediaType:    mediaType,
		orch:         orch,
		client:       client,
		settings:     settings,
		localization: localization,
	}

	f.createUI()
	f.orch.SetUpdateCallback(f.onSessionUpdate)
	f.applySessionDefaults()
	f.renderSession(f.orch.Session())
	return f
}

// Container returns the form's root container for embedding in a tab
func (f *ConvertForm) Container() *fyne.Container {
	return f.content
}

// createUI creates the UI components
func (f *ConvertForm) createUI() {
	pickLabel := f.localization.GetText(KeyChooseFile)
	if f.mediaType == model.MediaBatch {
		pickLabel = f.localization.GetText(KeyAddFile)
	}
	f.fileBtn = widget.NewButton(pickLabel, f.onPickFile)

	f.fileLabel = widget.NewLabel(f.localization.GetText(KeyNoFileSelected))
	f.fileLabel.Truncation = fyne.TextTruncateEllipsis

	f.formatSelect = widget.NewSelect(f.mediaType.OutputFormats(), func(format string) {
		f.orch.SetOutputFormat(format)
	})
	formats := f.mediaType.OutputFormats()
	if len(formats) > 0 {
		f.formatSelect.SetSelected(formats[0])
	}

	f.filenameEntry = widget.NewEntry()
	f.filenameEntry.SetPlaceHolder(f.localization.GetText(KeyCustomFilename))
	f.filenameEntry.OnChanged = func(name string) {
		f.orch.SetCustomFilename(name)
	}

	f.uploadBar = widget.NewProgressBar()
	f.uploadBar.Hide()
	f.convertBar = widget.NewProgressBar()
	f.convertBar.Hide()

	f.statusLabel = widget.NewLabel("")
	f.statusLabel.TextStyle = fyne.TextStyle{Bold: true}
	f.messageLabel = widget.NewLabel("")
	f.messageLabel.Wrapping = fyne.TextWrapWord

	f.convertBtn = widget.NewButton(f.localization.GetText(KeyConvert), f.onConvert)
	f.convertBtn.Importance = widget.HighImportance
	f.downloadBtn = widget.NewButton(f.localization.GetText(KeyDownload), f.onDownload)
	f.resetBtn = widget.NewButton(f.localization.GetText(KeyReset), f.onReset)

	fileRow := container.NewBorder(nil, nil, f.fileBtn, nil, f.fileLabel)
	actionRow := container.NewHBox(f.convertBtn, f.downloadBtn, f.resetBtn)

	f.content = container.NewVBox(
		fileRow,
		widget.NewLabel(f.localization.GetText(KeyOutputFormat)),
		f.formatSelect,
		f.filenameEntry,
		widget.NewSeparator(),
		f.statusLabel,
		f.uploadBar,
		f.convertBar,
		f.messageLabel,
		actionRow,
	)
}

// applySessionDefaults re-applies form values after a file selection reset
// the session. Selecting a file clears every derived field, so picker state
// is pushed back into the orchestrator here.
func (f *ConvertForm) applySessionDefaults() {
	f.orch.SetOutputFormat(f.formatSelect.Selected)
	f.orch.SetCustomFilename(f.filenameEntry.Text)
	if f.settings.GetAutoSaveEnabled() {
		f.orch.SetOutputDirectory(f.settings.GetOutputDirectory())
	} else {
		f.orch.SetOutputDirectory("")
	}
}

// onPickFile opens the system file picker and binds the chosen file
func (f *ConvertForm) onPickFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		info, statErr := os.Stat(path)
		if statErr != nil {
			log.Printf("failed to stat selected file %s: %v", path, statErr)
			dialog.ShowError(statErr, f.window)
			return
		}

		file := model.InputFile{
			Path: path,
			Name: reader.URI().Name(),
			Size: info.Size(),
		}

		if f.mediaType == model.MediaBatch {
			sess := f.orch.Session()
			if f.batch == nil || !sess.HasInput() {
				f.batch = model.NewBatch(uuid.NewString())
			}
			f.batch.AddFile(file)
			f.orch.SelectBatch(f.batch)
		} else {
			f.orch.SelectFile(file)
		}
		f.applySessionDefaults()
	}, f.window)
}

// onConvert starts a conversion attempt for the current session
func (f *ConvertForm) onConvert() {
	f.orch.Convert(context.Background(), func(ctx context.Context, s model.ConversionSession, opts api.ConvertOptions) (*model.ConversionResult, error) {
		if s.Batch != nil {
			return f.client.ConvertBatch(ctx, s.Batch, opts)
		}
		return f.client.Convert(ctx, f.mediaType, *s.SelectedFile, opts)
	}, nil)
}

// onDownload delivers the completed artifact
func (f *ConvertForm) onDownload() {
	f.orch.Download(context.Background())
}

// onReset clears the form back to its initial state
func (f *ConvertForm) onReset() {
	f.batch = nil
	f.orch.Reset()
	f.applySessionDefaults()
}

// onSessionUpdate re-renders the form whenever the session changes. Updates
// arrive from background goroutines, so rendering goes through fyne.Do.
func (f *ConvertForm) onSessionUpdate(s model.ConversionSession) {
	fyne.Do(func() {
		f.renderSession(s)
	})
}

// renderSession maps one session snapshot onto the widgets
func (f *ConvertForm) renderSession(s model.ConversionSession) {
	f.fileLabel.SetText(s.GetDisplayTitle())
	if !s.HasInput() {
		f.fileLabel.SetText(f.localization.GetText(KeyNoFileSelected))
	}

	busy := s.Status.IsBusy()
	if busy {
		f.fileBtn.Disable()
		f.convertBtn.Disable()
		f.formatSelect.Disable()
		f.filenameEntry.Disable()
	} else {
		f.fileBtn.Enable()
		f.formatSelect.Enable()
		f.filenameEntry.Enable()
		if s.HasInput() {
			f.convertBtn.Enable()
		} else {
			f.convertBtn.Disable()
		}
	}

	if s.Status == model.StatusCompleted && s.DownloadURL != "" {
		f.downloadBtn.Enable()
	} else {
		f.downloadBtn.Disable()
	}

	switch s.Status {
	case model.StatusUploading:
		f.statusLabel.Importance = widget.HighImportance
		f.statusLabel.SetText(f.localization.GetText(KeyUploading) + MiddleDotSeparator + fmt.Sprintf(ProgressLabelFormat, s.UploadProgress))
		f.uploadBar.Show()
		f.uploadBar.SetValue(float64(s.UploadProgress) / 100)
		f.convertBar.Hide()
		f.messageLabel.SetText("")
	case model.StatusConverting:
		f.statusLabel.Importance = widget.HighImportance
		f.statusLabel.SetText(f.localization.GetText(KeyConverting))
		f.uploadBar.Hide()
		f.convertBar.Show()
		if s.Progress != nil {
			f.convertBar.SetValue(float64(s.Progress.Progress) / 100)
			f.messageLabel.SetText(s.Progress.Message)
		} else {
			f.convertBar.SetValue(0)
			f.messageLabel.SetText("")
		}
	case model.StatusCompleted:
		f.statusLabel.Importance = widget.SuccessImportance
		f.statusLabel.SetText(IconDone + " " + f.localization.GetText(KeyCompleted))
		f.uploadBar.Hide()
		f.convertBar.Hide()
		f.messageLabel.SetText(s.OutputName())
	case model.StatusFailed:
		f.statusLabel.Importance = widget.DangerImportance
		f.statusLabel.SetText(IconError + " " + f.localization.GetText(KeyFailed))
		f.uploadBar.Hide()
		f.convertBar.Hide()
		f.messageLabel.SetText(s.Error)
	default:
		f.statusLabel.Importance = widget.MediumImportance
		f.statusLabel.SetText("")
		f.uploadBar.Hide()
		f.convertBar.Hide()
		f.messageLabel.SetText("")
	}
}
