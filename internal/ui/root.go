package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bookshelf/internal/catalog"
	"github.com/ytget/bookshelf/internal/config"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	catalog      catalog.Catalog
	settings     *config.Settings
	localization *Localization

	// UI components
	form        *EntryForm
	createBtn   *widget.Button
	resetBtn    *widget.Button
	clearAllBtn *widget.Button
	settingsBtn *widget.Button
	bookList    *BookList
	toast       *Toast

	// confirm asks yes/no questions; a dialog by default, replaceable in tests
	confirm catalog.Confirmer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc catalog.Catalog) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		catalog:      svc,
		settings:     settings,
		localization: localization,
	}
	ui.confirm = ui.showConfirmDialog

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Every persisted change re-renders the list; outcomes go to the toast
	ui.catalog.SetChangeCallback(ui.bookList.Render)
	ui.catalog.SetNotifier(ui.toast)

	// Initial paint
	ui.bookList.Render()

	log.Printf("UI setup completed successfully")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.form = NewEntryForm(ui.localization)
	ui.form.TitleEntry().OnSubmitted = func(string) {
		ui.onCreate()
	}

	ui.createBtn = widget.NewButtonWithIcon("", theme.ContentAddIcon(), ui.onCreate)
	ui.createBtn.Importance = widget.HighImportance

	ui.resetBtn = widget.NewButtonWithIcon("", theme.ContentClearIcon(), ui.onReset)

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.clearAllBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), ui.onClearAll)
	ui.clearAllBtn.Importance = widget.DangerImportance

	ui.toast = NewToast(ui.localization)

	ui.bookList = NewBookList(ui.catalog, ui.localization)
	ui.bookList.SetDeleteCallback(ui.onDelete)

	formActions := container.NewHBox(ui.settingsBtn, layout.NewSpacer(), ui.resetBtn, ui.createBtn)
	top := container.NewVBox(ui.form.Container(), formActions, widget.NewSeparator())
	bottom := container.NewBorder(nil, nil, nil, ui.clearAllBtn, ui.toast.Container())

	content := container.NewBorder(
		top,                     // top
		bottom,                  // bottom
		nil,                     // left
		nil,                     // right
		ui.bookList.Container(), // center - book list
	)

	ui.refreshUITexts()
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

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

	ui.refreshUITexts()
	ui.createMenu()

	// Rows carry translated button labels
	ui.bookList.Render()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.form.RefreshTexts()
	ui.createBtn.SetText(ui.localization.GetText(KeyCreate))
	ui.resetBtn.SetText(ui.localization.GetText(KeyReset))
	ui.clearAllBtn.SetText(ui.localization.GetText(KeyClearAll))
}

// onCreate handles the create button and Enter in the title field
func (ui *RootUI) onCreate() {
	book, err := ui.catalog.Create(ui.form.Values())
	if err != nil {
		if !errors.Is(err, catalog.ErrTitleRequired) {
			log.Printf("Error creating book: %v", err)
		}
		return
	}

	log.Printf("Created book %s, clearing form", book.ID)

	ui.form.Clear()
	// Return focus to the title for quick entry
	ui.window.Canvas().Focus(ui.form.TitleEntry())
}

// onReset clears the form without touching the collection
func (ui *RootUI) onReset() {
	ui.form.Clear()
	ui.catalog.Reset()
}

// onDelete handles a row's delete button
func (ui *RootUI) onDelete(id string) {
	if err := ui.catalog.Delete(id); err != nil {
		log.Printf("Error deleting book %s: %v", id, err)
	}
}

// onClearAll handles the clear-all button
func (ui *RootUI) onClearAll() {
	ui.catalog.ClearAll(ui.confirm)
}

// showConfirmDialog asks the user a yes/no question in a modal dialog
func (ui *RootUI) showConfirmDialog(messageKey string, respond func(ok bool)) {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyConfirmTitle),
		ui.localization.GetText(messageKey),
		respond,
		ui.window,
	)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func(lang string) {
		ui.onLanguageChange(lang)
		ui.toast.Notify(KeySettingsSaved)
	})
}
