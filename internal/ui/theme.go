package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ShelfTheme is a compact, paper-toned theme for the book list
type ShelfTheme struct{}

// NewShelfTheme creates the application theme
func NewShelfTheme() fyne.Theme {
	return &ShelfTheme{}
}

// Color returns theme colors
func (t *ShelfTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 125, B: 50, A: 255} // Green for confirmations
	case theme.ColorNameError:
		return color.RGBA{R: 198, G: 40, B: 40, A: 255} // Red for delete actions
	case theme.ColorNamePrimary:
		return color.RGBA{R: 121, G: 85, B: 72, A: 255} // Leather brown for primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 28, G: 25, B: 23, A: 255}
		}
		return color.RGBA{R: 250, G: 247, B: 240, A: 255} // Paper
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 245, G: 240, B: 232, A: 255}
		}
		return color.RGBA{R: 40, G: 33, B: 28, A: 255} // Ink
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ShelfTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ShelfTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *ShelfTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15 // book titles
	case theme.SizeNameCaptionText:
		return 11 // meta line
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
