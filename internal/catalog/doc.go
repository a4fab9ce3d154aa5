package catalog

// Package catalog implements the user commands against the book store: create,
// delete one, clear all and form reset. Every command reloads the collection
// right before writing it back, emits a change signal for the list view and
// reports the outcome through a Notifier.
