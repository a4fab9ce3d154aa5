package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/bookshelf/internal/catalog"
	"github.com/ytget/bookshelf/internal/store"
	"github.com/ytget/bookshelf/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.bookshelf"
	AppName = "Bookshelf"

	WindowWidth  = 520
	WindowHeight = 720
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app; its preferences hold the book collection
	myApp := app.NewWithID(AppID)

	myApp.Settings().SetTheme(ui.NewShelfTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	books := store.New(myApp.Preferences())
	catalogSvc := catalog.NewService(books, nil)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, catalogSvc)

	// Show and run
	myWindow.ShowAndRun()
}
