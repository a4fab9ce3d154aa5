package catalog

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/ytget/bookshelf/internal/model"
)

// Notification keys, resolved to text by the UI localization
const (
	KeyTitleRequired   = "title_required"
	KeyBookCreated     = "book_created"
	KeyBookDeleted     = "book_deleted"
	KeyBooksCleared    = "books_cleared"
	KeyFormCleared     = "form_cleared"
	KeyConfirmClearAll = "confirm_clear_all"
)

// maxIDAttempts bounds regeneration when a fresh id collides with a stored one
const maxIDAttempts = 3

// ErrTitleRequired is returned by Create when the trimmed title is empty.
var ErrTitleRequired = errors.New("title is required")

// BookForm carries the raw text of a submitted form
type BookForm struct {
	Title       string
	Author      string
	Year        string
	ISBN        string
	Description string
}

// Service handles book commands
type Service struct {
	repo       Repository
	notifier   Notifier
	generateID model.IDGenerator
	now        func() time.Time
	onChange   func() // single subscriber, re-renders the list
}

// NewService creates a new command service
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{
		repo:       repo,
		notifier:   notifier,
		generateID: model.GenerateID,
		now:        time.Now,
	}
}

// SetChangeCallback sets the function called after every persisted change
func (s *Service) SetChangeCallback(callback func()) {
	s.onChange = callback
}

// SetNotifier sets where command outcomes are reported
func (s *Service) SetNotifier(notifier Notifier) {
	s.notifier = notifier
}

// SetIDGenerator replaces the identifier source
func (s *Service) SetIDGenerator(generate model.IDGenerator) {
	if generate == nil {
		generate = model.GenerateID
	}
	s.generateID = generate
}

// SetClock replaces the time source used for ids and CreatedAt
func (s *Service) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// Books returns the collection as currently persisted
func (s *Service) Books() model.Collection {
	return s.repo.Load()
}

// Create validates the form and prepends a new book
func (s *Service) Create(form BookForm) (*model.Book, error) {
	title := clean(form.Title)
	if title == "" {
		s.notify(KeyTitleRequired)
		return nil, ErrTitleRequired
	}

	now := s.now()
	books := s.repo.Load()

	book := model.Book{
		ID:          s.newID(now, books),
		Title:       title,
		Author:      clean(form.Author),
		Year:        model.ParseYear(form.Year),
		ISBN:        clean(form.ISBN),
		Description: clean(form.Description),
		CreatedAt:   now.UnixMilli(),
	}

	if err := s.repo.Save(books.Prepend(book)); err != nil {
		return nil, fmt.Errorf("save new book: %w", err)
	}

	log.Printf("Book created: id=%s title=%q", book.ID, book.Title)

	s.changed()
	s.notify(KeyBookCreated)
	return &book, nil
}

// Delete removes the book with the given id; a missing id is not an error
func (s *Service) Delete(id string) error {
	books := s.repo.Load()
	if !books.Contains(id) {
		log.Printf("Delete requested for unknown book id=%s", id)
	}

	if err := s.repo.Save(books.Without(id)); err != nil {
		return fmt.Errorf("save after delete %s: %w", id, err)
	}

	log.Printf("Book deleted: id=%s", id)

	s.changed()
	s.notify(KeyBookDeleted)
	return nil
}

// ClearAll asks for confirmation and removes every book.
// Nothing happens, not even a prompt, when the collection is already empty.
func (s *Service) ClearAll(confirm Confirmer) {
	if s.repo.Load().IsEmpty() {
		return
	}

	confirm(KeyConfirmClearAll, func(ok bool) {
		if !ok {
			log.Printf("Clear all declined")
			return
		}

		if err := s.repo.Save(model.Collection{}); err != nil {
			log.Printf("Error clearing books: %v", err)
			return
		}

		log.Printf("All books cleared")

		s.changed()
		s.notify(KeyBooksCleared)
	})
}

// Reset reports a cleared form; the collection is not touched
func (s *Service) Reset() {
	s.notify(KeyFormCleared)
}

// newID generates an id, retrying a few times on collision with stored books
func (s *Service) newID(now time.Time, books model.Collection) string {
	id := s.generateID(now)
	for attempt := 1; attempt < maxIDAttempts && books.Contains(id); attempt++ {
		id = s.generateID(now)
	}
	return id
}

func (s *Service) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *Service) notify(key string) {
	if s.notifier != nil {
		s.notifier.Notify(key)
	}
}

// clean trims surrounding whitespace and stores text in NFC form
func clean(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
