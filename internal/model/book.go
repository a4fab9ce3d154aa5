package model

import (
	"strconv"
	"strings"
	"time"
)

// Text fragments used for derived display strings
const (
	MetaSeparator = " · "
	ISBNPrefix    = "#"
)

// Book represents a single catalog record.
// Optional fields are encoded by presence: a nil Year or an empty string is
// left out of the persisted JSON entirely.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Year        *int   `json:"year,omitempty"`
	ISBN        string `json:"isbn,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"createdAt"` // milliseconds since epoch
}

// IsValid reports whether the record satisfies the persisted invariants
func (b Book) IsValid() bool {
	return b.ID != "" && strings.TrimSpace(b.Title) != ""
}

// CreatedTime returns CreatedAt as a time value
func (b Book) CreatedTime() time.Time {
	return time.UnixMilli(b.CreatedAt)
}

// Collection is the ordered set of books, newest first.
type Collection []Book

// Len returns the number of books
func (c Collection) Len() int {
	return len(c)
}

// IsEmpty reports whether the collection has no books
func (c Collection) IsEmpty() bool {
	return len(c) == 0
}

// Prepend returns a new collection with book placed first
func (c Collection) Prepend(book Book) Collection {
	next := make(Collection, 0, len(c)+1)
	next = append(next, book)
	return append(next, c...)
}

// Without returns a new collection with the book matching id removed.
// A missing id yields an unchanged copy.
func (c Collection) Without(id string) Collection {
	next := make(Collection, 0, len(c))
	for _, book := range c {
		if book.ID != id {
			next = append(next, book)
		}
	}
	return next
}

// Contains reports whether a book with the given id exists
func (c Collection) Contains(id string) bool {
	for _, book := range c {
		if book.ID == id {
			return true
		}
	}
	return false
}

// BookView holds the strings a list row displays for one book
type BookView struct {
	ID          string
	Title       string
	Meta        string
	Description string
}

// NewBookView derives display strings from a book
func NewBookView(b Book) BookView {
	return BookView{
		ID:          b.ID,
		Title:       b.Title,
		Meta:        metaLine(b),
		Description: b.Description,
	}
}

// HasMeta reports whether the meta line should be shown
func (v BookView) HasMeta() bool {
	return v.Meta != ""
}

// HasDescription reports whether the description line should be shown
func (v BookView) HasDescription() bool {
	return v.Description != ""
}

// metaLine joins author, year and #isbn, skipping absent parts.
// A zero year is treated as absent.
func metaLine(b Book) string {
	parts := make([]string, 0, 3)
	if b.Author != "" {
		parts = append(parts, b.Author)
	}
	if b.Year != nil && *b.Year != 0 {
		parts = append(parts, strconv.Itoa(*b.Year))
	}
	if b.ISBN != "" {
		parts = append(parts, ISBNPrefix+b.ISBN)
	}
	return strings.Join(parts, MetaSeparator)
}
