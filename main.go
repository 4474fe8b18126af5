package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/convdesk/convdesk/internal/api"
	"github.com/convdesk/convdesk/internal/config"
	"github.com/convdesk/convdesk/internal/platform"
	"github.com/convdesk/convdesk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.convdesk.convdesk"
	AppName = "ConvDesk"

	WindowWidth  = 900
	WindowHeight = 620
)

func main() {
	// Log version information
	fmt.Printf("ConvDesk v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	client := api.NewClient(settings.GetServerURL())
	host := platform.Detect()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, host)

	// Show and run
	myWindow.ShowAndRun()
}
