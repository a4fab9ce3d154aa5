package model

// Package model defines the book record, the ordered collection persisted as a
// single blob, and the derived display strings the list view renders. Records
// are immutable once created; collection helpers always return new slices.
