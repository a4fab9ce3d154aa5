package ui

import (
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bookshelf/internal/model"
)

// BookSource supplies the persisted collection to render
type BookSource interface {
	Books() model.Collection
}

// BookList renders the current collection as a vertical list of rows.
// Every Render rebuilds the rows from a fresh load; nothing is cached between
// renders.
type BookList struct {
	source       BookSource
	localization *Localization

	// UI components
	rows       *fyne.Container
	emptyLabel *widget.Label
	container  *fyne.Container

	// onDelete is invoked with the id of the row whose delete button was tapped
	onDelete func(id string)
}

// NewBookList creates the list view
func NewBookList(source BookSource, localization *Localization) *BookList {
	bl := &BookList{
		source:       source,
		localization: localization,
	}

	bl.createUI()
	return bl
}

// SetDeleteCallback sets the per-row delete action
func (bl *BookList) SetDeleteCallback(onDelete func(id string)) {
	bl.onDelete = onDelete
}

// Container returns the list's root canvas object
func (bl *BookList) Container() fyne.CanvasObject {
	return bl.container
}

// createUI creates the list components
func (bl *BookList) createUI() {
	bl.rows = container.NewVBox()

	bl.emptyLabel = widget.NewLabel("")
	bl.emptyLabel.Alignment = fyne.TextAlignCenter
	bl.emptyLabel.Wrapping = fyne.TextWrapWord
	bl.emptyLabel.Hide()

	scroll := container.NewVScroll(bl.rows)
	scroll.SetMinSize(fyne.NewSize(RowMinWidth, ListMinHeight))

	bl.container = container.NewBorder(bl.emptyLabel, nil, nil, nil, scroll)
}

// Render rebuilds the list from the persisted collection
func (bl *BookList) Render() {
	books := bl.source.Books()

	bl.rows.RemoveAll()

	if books.IsEmpty() {
		bl.emptyLabel.SetText(IconEmpty + " " + bl.localization.GetText(KeyEmptyState))
		bl.emptyLabel.Show()
		bl.rows.Refresh()
		return
	}

	bl.emptyLabel.Hide()
	for _, book := range books {
		bl.rows.Add(NewBookRow(book, bl.localization, bl.deleteBook))
	}
	bl.rows.Refresh()

	log.Printf("Rendered %d books", len(books))
}

// deleteBook forwards a row's delete action
func (bl *BookList) deleteBook(id string) {
	if bl.onDelete == nil {
		log.Printf("Delete requested for %s but no handler is set", id)
		return
	}
	bl.onDelete(id)
}

// Rows returns the rows currently displayed
func (bl *BookList) Rows() []*BookRow {
	rows := make([]*BookRow, 0, len(bl.rows.Objects))
	for _, obj := range bl.rows.Objects {
		if row, ok := obj.(*BookRow); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// IsEmptyStateVisible reports whether the empty-state indicator is shown
func (bl *BookList) IsEmptyStateVisible() bool {
	return bl.emptyLabel.Visible()
}

// Text returns a plain-text dump of what is on screen, one line per visible label
func (bl *BookList) Text() string {
	var b strings.Builder

	if bl.emptyLabel.Visible() {
		b.WriteString("[empty] " + bl.emptyLabel.Text + "\n")
	}

	for _, row := range bl.Rows() {
		b.WriteString("- " + row.titleLabel.Text + "\n")
		if row.metaLabel.Visible() {
			b.WriteString("  " + row.metaLabel.Text + "\n")
		}
		if row.descriptionLabel.Visible() {
			b.WriteString("  " + row.descriptionLabel.Text + "\n")
		}
		b.WriteString("  [" + row.deleteBtn.Text + "]\n")
	}

	return b.String()
}
