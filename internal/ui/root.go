package ui

import (
	"log"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/convdesk/convdesk/internal/api"
	"github.com/convdesk/convdesk/internal/config"
	"github.com/convdesk/convdesk/internal/model"
	"github.com/convdesk/convdesk/internal/platform"
	"github.com/convdesk/convdesk/internal/progress"
	"github.com/convdesk/convdesk/internal/session"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	client       *api.Client
	host         *platform.Host
	settings     *config.Settings
	localization *Localization

	forms map[model.MediaType]*ConvertForm
	tabs  *container.AppTabs

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
}

// NewRootUI creates and initializes the main UI. One conversion form is
// built per media type; each form owns its orchestrator and progress channel.
func NewRootUI(window fyne.Window, app fyne.App, client *api.Client, host *platform.Host) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the output directory exists when auto-save is on
	if settings.GetAutoSaveEnabled() {
		platform.CreateDirectoryIfNotExists(settings.GetOutputDirectory())
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		client:       client,
		host:         host,
		settings:     settings,
		localization: localization,
		forms:        make(map[model.MediaType]*ConvertForm),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	// Create top panel
	var topPanel *fyne.Container
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, widget.NewLabel(ui.localization.GetText(KeyAppTitle))), settingsBtn)
	} else {
		topPanel = container.NewBorder(nil, nil, widget.NewLabel(ui.localization.GetText(KeyAppTitle)), settingsBtn)
	}

	// Create notification panel under the header (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationContainer = container.NewHBox(container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	// Create one tab per media type from the catalog
	ui.tabs = container.NewAppTabs()
	for _, mediaType := range model.AllMediaTypes() {
		form := ui.buildForm(mediaType)
		ui.forms[mediaType] = form
		ui.tabs.Append(container.NewTabItem(mediaType.DisplayName(), container.NewPadded(form.Container())))
	}
	ui.tabs.SetTabLocation(container.TabLocationLeading)

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		ui.tabs,     // center
	)

	ui.window.SetContent(content)
}

// buildForm assembles the orchestrator stack for one media type
func (ui *RootUI) buildForm(mediaType model.MediaType) *ConvertForm {
	channel := progress.NewChannel(ui.client.BaseURL())

	var host session.HostCapability
	if ui.host != nil {
		host = ui.host
	}

	orch := session.NewOrchestrator(session.Config{
		Channel:           channel,
		Host:              host,
		BaseURL:           ui.client.BaseURL(),
		OpenBrowser:       ui.openBrowser,
		Notify:            ui.showNotification,
		ConvertingTimeout: ui.settings.GetConvertingTimeout(),
		RevealOnSave:      ui.settings.GetRevealOnSave(),
	})

	return NewConvertForm(ui.window, mediaType, orch, ui.client, ui.settings, ui.localization)
}

// openBrowser navigates the system browser to a download link
func (ui *RootUI) openBrowser(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return ui.app.OpenURL(parsed)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Recreate menu to update checkmarks
	ui.createMenu()

	ui.showNotification(ui.localization.GetText(KeySettingsSaved))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		log.Printf("settings updated; new conversions use the updated values")
	})
}

// showNotification displays a message in the notification panel. It auto
// hides after a short delay and is safe to call from any goroutine.
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})

	go func() {
		time.Sleep(ToastAutoHide)
		ui.hideNotification()
	}()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationContainer.Hide()
	})
}
