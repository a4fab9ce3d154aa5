package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toast is a status line that shows one short message at a time and hides it
// after a fixed delay. A new message replaces the current one and restarts
// the timer; there is no queue.
type Toast struct {
	localization *Localization
	hideAfter    time.Duration

	label     *widget.Label
	container *fyne.Container

	mu         sync.Mutex
	timer      *time.Timer
	generation int
	message    string
	visible    bool
}

// NewToast creates a hidden status line
func NewToast(localization *Localization) *Toast {
	t := &Toast{
		localization: localization,
		hideAfter:    ToastAutoHide,
	}

	t.label = widget.NewLabel("")
	t.label.Alignment = fyne.TextAlignCenter
	t.label.Importance = widget.HighImportance
	t.container = container.NewPadded(t.label)
	t.container.Hide()
	return t
}

// Container returns the toast's canvas object
func (t *Toast) Container() fyne.CanvasObject {
	return t.container
}

// Notify shows the localized text for key
func (t *Toast) Notify(key string) {
	t.Show(t.localization.GetText(key))
}

// Show displays message and (re)starts the hide timer.
// Must be called on the UI goroutine.
func (t *Toast) Show(message string) {
	t.mu.Lock()
	t.generation++
	generation := t.generation
	if t.timer != nil {
		t.timer.Stop()
	}
	t.message = message
	t.visible = true
	t.timer = time.AfterFunc(t.hideAfter, func() { t.expire(generation) })
	t.mu.Unlock()

	t.label.SetText(message)
	t.container.Show()
}

// Current returns the message on screen and whether it is visible
func (t *Toast) Current() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message, t.visible
}

// expire hides the toast unless a newer message replaced it
func (t *Toast) expire(generation int) {
	t.mu.Lock()
	if generation != t.generation {
		t.mu.Unlock()
		return
	}
	t.visible = false
	t.timer = nil
	t.mu.Unlock()

	fyne.Do(func() {
		t.container.Hide()
	})
}
