package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the entry form and list actions to the catalog service, renders the
// book list from the persisted collection, and shows transient notifications.
// All UI strings are localized via Localization.
