package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bookshelf/internal/catalog"
)

// EntryForm holds the book input fields
type EntryForm struct {
	localization *Localization

	titleEntry       *widget.Entry
	authorEntry      *widget.Entry
	yearEntry        *widget.Entry
	isbnEntry        *widget.Entry
	descriptionEntry *widget.Entry

	form *widget.Form
}

// NewEntryForm creates the input fields laid out as a form
func NewEntryForm(localization *Localization) *EntryForm {
	ef := &EntryForm{localization: localization}

	ef.titleEntry = widget.NewEntry()
	ef.authorEntry = widget.NewEntry()
	ef.yearEntry = widget.NewEntry()
	ef.isbnEntry = widget.NewEntry()
	ef.descriptionEntry = widget.NewMultiLineEntry()
	ef.descriptionEntry.Wrapping = fyne.TextWrapWord
	ef.descriptionEntry.SetMinRowsVisible(DescriptionRows)

	ef.form = widget.NewForm(
		widget.NewFormItem("", ef.titleEntry),
		widget.NewFormItem("", ef.authorEntry),
		widget.NewFormItem("", ef.yearEntry),
		widget.NewFormItem("", ef.isbnEntry),
		widget.NewFormItem("", ef.descriptionEntry),
	)

	ef.RefreshTexts()
	return ef
}

// Container returns the form widget
func (ef *EntryForm) Container() fyne.CanvasObject {
	return ef.form
}

// TitleEntry returns the entry that receives focus after a create
func (ef *EntryForm) TitleEntry() *widget.Entry {
	return ef.titleEntry
}

// Values returns the raw field text
func (ef *EntryForm) Values() catalog.BookForm {
	return catalog.BookForm{
		Title:       ef.titleEntry.Text,
		Author:      ef.authorEntry.Text,
		Year:        ef.yearEntry.Text,
		ISBN:        ef.isbnEntry.Text,
		Description: ef.descriptionEntry.Text,
	}
}

// Clear empties every field
func (ef *EntryForm) Clear() {
	for _, entry := range ef.entries() {
		entry.SetText("")
	}
}

// RefreshTexts re-applies labels and placeholders in the current language
func (ef *EntryForm) RefreshTexts() {
	labels := []string{KeyFieldTitle, KeyFieldAuthor, KeyFieldYear, KeyFieldISBN, KeyFieldDescription}
	placeholders := []string{KeyPlaceholderTitle, KeyPlaceholderAuthor, KeyPlaceholderYear, KeyPlaceholderISBN, KeyPlaceholderDescription}

	for i, entry := range ef.entries() {
		ef.form.Items[i].Text = ef.localization.GetText(labels[i])
		entry.SetPlaceHolder(ef.localization.GetText(placeholders[i]))
	}
	ef.form.Refresh()
}

func (ef *EntryForm) entries() []*widget.Entry {
	return []*widget.Entry{ef.titleEntry, ef.authorEntry, ef.yearEntry, ef.isbnEntry, ef.descriptionEntry}
}
