package store

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ytget/bookshelf/internal/model"
)

// StorageKey names the single preferences slot holding the collection
const StorageKey = "books.v1"

// KeyValue is the persistent key-value backend. fyne.Preferences satisfies it.
type KeyValue interface {
	String(key string) string
	SetString(key string, value string)
}

// Store reads and writes the book collection
type Store struct {
	kv  KeyValue
	key string
}

// New creates a store bound to the default slot
func New(kv KeyValue) *Store {
	return &Store{kv: kv, key: StorageKey}
}

// Key returns the slot the store writes to
func (s *Store) Key() string {
	return s.key
}

// Load returns the persisted collection.
// Absent, unparseable or wrongly shaped data yields an empty collection;
// entries missing an id or a title are skipped.
func (s *Store) Load() (books model.Collection) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("store: recovered while loading %s: %v", s.key, r)
			books = model.Collection{}
		}
	}()

	raw := s.kv.String(s.key)
	if raw == "" {
		return model.Collection{}
	}

	var decoded []model.Book
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.Printf("store: ignoring unreadable %s: %v", s.key, err)
		return model.Collection{}
	}

	books = make(model.Collection, 0, len(decoded))
	for _, book := range decoded {
		if !book.IsValid() {
			log.Printf("store: skipping invalid record id=%q", book.ID)
			continue
		}
		books = append(books, book)
	}
	return books
}

// Save overwrites the slot with the full collection
func (s *Store) Save(books model.Collection) error {
	if books == nil {
		books = model.Collection{}
	}

	data, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}

	s.kv.SetString(s.key, string(data))
	return nil
}
