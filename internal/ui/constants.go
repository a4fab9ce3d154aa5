package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconEmpty    = "📚"
)

// Layout sizing (BookRow / lists)
const (
	RowMinWidth float32 = 320

	DescriptionRows             = 3
	ListMinHeight       float32 = 240
	SettingsDialogWidth float32 = 360
	SettingsDialogH     float32 = 200
)

// Toast notification behavior
const (
	ToastAutoHide = 1600 * time.Millisecond
)
