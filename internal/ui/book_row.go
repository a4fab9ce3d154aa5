package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bookshelf/internal/model"
)

// BookRow displays one book: title, optional meta and description lines,
// and a delete action.
type BookRow struct {
	widget.BaseWidget

	view         model.BookView
	localization *Localization

	// UI components
	titleLabel       *widget.Label
	metaLabel        *widget.Label
	descriptionLabel *widget.Label
	deleteBtn        *widget.Button
	layout           *fyne.Container

	onDelete func(id string)
}

// NewBookRow creates a row for the given book
func NewBookRow(book model.Book, localization *Localization, onDelete func(id string)) *BookRow {
	br := &BookRow{
		view:         model.NewBookView(book),
		localization: localization,
		onDelete:     onDelete,
	}
	br.ExtendBaseWidget(br)
	br.createUI()
	br.updateFromView()
	return br
}

// View returns the display strings this row was built from
func (br *BookRow) View() model.BookView {
	return br.view
}

// createUI creates the UI components
func (br *BookRow) createUI() {
	br.titleLabel = widget.NewLabel("")
	br.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	br.titleLabel.Wrapping = fyne.TextWrapWord
	br.titleLabel.SizeName = theme.SizeNameSubHeadingText

	br.metaLabel = widget.NewLabel("")
	br.metaLabel.TextStyle = fyne.TextStyle{Italic: true}
	br.metaLabel.SizeName = theme.SizeNameCaptionText
	br.metaLabel.Truncation = fyne.TextTruncateEllipsis

	br.descriptionLabel = widget.NewLabel("")
	br.descriptionLabel.Wrapping = fyne.TextWrapWord

	br.deleteBtn = widget.NewButtonWithIcon(br.localization.GetText(KeyDelete), theme.DeleteIcon(), func() {
		log.Printf("Delete button clicked for book %s", br.view.ID)
		if br.onDelete != nil {
			br.onDelete(br.view.ID)
		} else {
			log.Printf("onDelete callback is nil for book %s", br.view.ID)
		}
	})
	br.deleteBtn.Importance = widget.DangerImportance

	details := container.NewVBox(br.titleLabel, br.metaLabel, br.descriptionLabel)
	actions := container.NewVBox(br.deleteBtn)

	br.layout = container.NewVBox(
		container.NewBorder(nil, nil, nil, actions, details),
		widget.NewSeparator(),
	)
}

// updateFromView pushes the view strings into the labels
func (br *BookRow) updateFromView() {
	br.titleLabel.SetText(br.view.Title)

	br.metaLabel.SetText(br.view.Meta)
	if br.view.HasMeta() {
		br.metaLabel.Show()
	} else {
		br.metaLabel.Hide()
	}

	br.descriptionLabel.SetText(br.view.Description)
	if br.view.HasDescription() {
		br.descriptionLabel.Show()
	} else {
		br.descriptionLabel.Hide()
	}
}

// CreateRenderer creates the widget renderer
func (br *BookRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(br.layout)
}

// MinSize keeps rows readable in narrow windows
func (br *BookRow) MinSize() fyne.Size {
	size := br.BaseWidget.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	return size
}
