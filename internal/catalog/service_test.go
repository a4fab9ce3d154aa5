package catalog

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/bookshelf/internal/model"
	"github.com/ytget/bookshelf/internal/store"
)

// memoryRepo is a Repository that records writes
type memoryRepo struct {
	books   model.Collection
	saves   int
	saveErr error
}

func (r *memoryRepo) Load() model.Collection {
	out := make(model.Collection, len(r.books))
	copy(out, r.books)
	return out
}

func (r *memoryRepo) Save(books model.Collection) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.books = books
	return nil
}

// recordingNotifier keeps every key it was asked to show
type recordingNotifier struct {
	keys []string
}

func (n *recordingNotifier) Notify(key string) {
	n.keys = append(n.keys, key)
}

// answer returns a Confirmer that replies ok and counts prompts
func answer(ok bool, prompts *int) Confirmer {
	return func(message string, respond func(bool)) {
		*prompts++
		respond(ok)
	}
}

func sequentialIDs() model.IDGenerator {
	n := 0
	return func(now time.Time) string {
		n++
		return fmt.Sprintf("%d-id%04d", now.UnixMilli(), n)
	}
}

func newTestService(repo Repository) (*Service, *recordingNotifier, *int) {
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier)
	svc.SetIDGenerator(sequentialIDs())
	svc.SetClock(func() time.Time { return time.UnixMilli(1700000000000) })

	changes := 0
	svc.SetChangeCallback(func() { changes++ })
	return svc, notifier, &changes
}

func TestNewService(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, nil)

	assert.NotNil(t, svc.generateID)
	assert.NotNil(t, svc.now)
	assert.Nil(t, svc.onChange)

	// nil notifier and callback must be tolerated
	_, err := svc.Create(BookForm{Title: "Dune"})
	require.NoError(t, err)
	svc.Reset()
}

func TestCreate_PrependsBook(t *testing.T) {
	repo := &memoryRepo{books: model.Collection{{ID: "old", Title: "Old"}}}
	svc, notifier, changes := newTestService(repo)

	book, err := svc.Create(BookForm{
		Title:       "  Dune ",
		Author:      " Frank Herbert ",
		Year:        " 1965 ",
		ISBN:        " 0441013597 ",
		Description: "  Spice  ",
	})
	require.NoError(t, err)

	require.Len(t, repo.books, 2)
	assert.Equal(t, *book, repo.books[0])
	assert.Equal(t, "old", repo.books[1].ID)

	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Frank Herbert", book.Author)
	require.NotNil(t, book.Year)
	assert.Equal(t, 1965, *book.Year)
	assert.Equal(t, "0441013597", book.ISBN)
	assert.Equal(t, "Spice", book.Description)
	assert.Equal(t, int64(1700000000000), book.CreatedAt)
	assert.Equal(t, "1700000000000-id0001", book.ID)

	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, 1, *changes)
	assert.Equal(t, []string{KeyBookCreated}, notifier.keys)
}

func TestCreate_OmitsBlankOptionalFields(t *testing.T) {
	repo := &memoryRepo{}
	svc, _, _ := newTestService(repo)

	book, err := svc.Create(BookForm{Title: "Dune", Author: "   ", Year: "", ISBN: "\t", Description: " "})
	require.NoError(t, err)

	assert.Empty(t, book.Author)
	assert.Nil(t, book.Year)
	assert.Empty(t, book.ISBN)
	assert.Empty(t, book.Description)
}

func TestCreate_NormalizesText(t *testing.T) {
	repo := &memoryRepo{}
	svc, _, _ := newTestService(repo)

	// "e" followed by a combining acute accent
	book, err := svc.Create(BookForm{Title: " Les Mise\u0301rables ", Author: "Victor Hugo"})
	require.NoError(t, err)

	assert.Equal(t, "Les Mis\u00e9rables", book.Title)
	assert.Equal(t, "Les Mis\u00e9rables", repo.books[0].Title)
}

func TestCreate_BlankTitle(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}

	for _, title := range tests {
		repo := &memoryRepo{books: model.Collection{{ID: "a", Title: "A"}}}
		svc, notifier, changes := newTestService(repo)

		book, err := svc.Create(BookForm{Title: title, Author: "Someone"})

		assert.Nil(t, book)
		assert.True(t, errors.Is(err, ErrTitleRequired))
		assert.Len(t, repo.books, 1)
		assert.Zero(t, repo.saves, "no write may happen for title %q", title)
		assert.Zero(t, *changes)
		assert.Equal(t, []string{KeyTitleRequired}, notifier.keys)
	}
}

func TestCreate_Year(t *testing.T) {
	tests := []struct {
		input    string
		expected *int
	}{
		{"1999", func() *int { v := 1999; return &v }()},
		{"abc", nil},
		{"", nil},
	}

	for _, test := range tests {
		repo := &memoryRepo{}
		svc, _, _ := newTestService(repo)

		book, err := svc.Create(BookForm{Title: "T", Year: test.input})
		require.NoError(t, err)
		assert.Equal(t, test.expected, book.Year, "year input %q", test.input)
	}
}

func TestCreate_RegeneratesCollidingID(t *testing.T) {
	repo := &memoryRepo{books: model.Collection{{ID: "dup", Title: "A"}}}
	svc, _, _ := newTestService(repo)

	ids := []string{"dup", "fresh"}
	svc.SetIDGenerator(func(time.Time) string {
		id := ids[0]
		ids = ids[1:]
		return id
	})

	book, err := svc.Create(BookForm{Title: "B"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", book.ID)
}

func TestCreate_SaveError(t *testing.T) {
	repo := &memoryRepo{saveErr: errors.New("disk full")}
	svc, notifier, changes := newTestService(repo)

	book, err := svc.Create(BookForm{Title: "Dune"})

	assert.Nil(t, book)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.saveErr)
	assert.Zero(t, *changes)
	assert.Empty(t, notifier.keys)
}

func TestDelete(t *testing.T) {
	repo := &memoryRepo{books: model.Collection{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}}
	svc, notifier, changes := newTestService(repo)

	require.NoError(t, svc.Delete("a"))

	assert.Equal(t, model.Collection{{ID: "b", Title: "B"}}, repo.books)
	assert.False(t, repo.books.Contains("a"))
	assert.Equal(t, 1, *changes)
	assert.Equal(t, []string{KeyBookDeleted}, notifier.keys)
}

func TestDelete_UnknownID(t *testing.T) {
	original := model.Collection{{ID: "a", Title: "A"}}
	repo := &memoryRepo{books: original}
	svc, notifier, _ := newTestService(repo)

	require.NoError(t, svc.Delete("missing"))

	assert.Equal(t, original, repo.books)
	assert.Equal(t, []string{KeyBookDeleted}, notifier.keys)
}

func TestDelete_SaveError(t *testing.T) {
	repo := &memoryRepo{books: model.Collection{{ID: "a", Title: "A"}}, saveErr: errors.New("boom")}
	svc, notifier, _ := newTestService(repo)

	err := svc.Delete("a")
	assert.ErrorIs(t, err, repo.saveErr)
	assert.Empty(t, notifier.keys)
}

func TestClearAll_Confirmed(t *testing.T) {
	repo := &memoryRepo{books: model.Collection{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}}
	svc, notifier, changes := newTestService(repo)
	prompts := 0

	svc.ClearAll(answer(true, &prompts))

	assert.Equal(t, 1, prompts)
	assert.Empty(t, repo.books)
	assert.NotNil(t, repo.books)
	assert.Equal(t, 1, *changes)
	assert.Equal(t, []string{KeyBooksCleared}, notifier.keys)
}

func TestClearAll_Declined(t *testing.T) {
	original := model.Collection{{ID: "a", Title: "A"}}
	repo := &memoryRepo{books: original}
	svc, notifier, changes := newTestService(repo)
	prompts := 0

	svc.ClearAll(answer(false, &prompts))

	assert.Equal(t, 1, prompts)
	assert.Equal(t, original, repo.books)
	assert.Zero(t, repo.saves)
	assert.Zero(t, *changes)
	assert.Empty(t, notifier.keys)
}

func TestClearAll_EmptyCollection(t *testing.T) {
	repo := &memoryRepo{}
	svc, notifier, changes := newTestService(repo)
	prompts := 0

	svc.ClearAll(answer(true, &prompts))

	assert.Zero(t, prompts, "no prompt for an empty collection")
	assert.Zero(t, repo.saves)
	assert.Zero(t, *changes)
	assert.Empty(t, notifier.keys)
}

func TestClearAll_PromptMessage(t *testing.T) {
	repo := &memoryRepo{books: model.Collection{{ID: "a", Title: "A"}}}
	svc, _, _ := newTestService(repo)

	var asked string
	svc.ClearAll(func(message string, respond func(bool)) {
		asked = message
	})

	assert.Equal(t, KeyConfirmClearAll, asked)
	assert.Len(t, repo.books, 1, "nothing happens until the user answers")
}

func TestReset(t *testing.T) {
	repo := &memoryRepo{books: model.Collection{{ID: "a", Title: "A"}}}
	svc, notifier, changes := newTestService(repo)

	svc.Reset()

	assert.Equal(t, []string{KeyFormCleared}, notifier.keys)
	assert.Zero(t, repo.saves)
	assert.Zero(t, *changes)
	assert.Len(t, repo.books, 1)
}

func TestService_Scenario(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	repo := store.New(app.Preferences())
	svc, notifier, changes := newTestService(repo)
	prompts := 0

	dune, err := svc.Create(BookForm{Title: "Dune"})
	require.NoError(t, err)
	books := svc.Books()
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.NotEmpty(t, books[0].ID)

	_, err = svc.Create(BookForm{Title: "Foundation", Year: "1951"})
	require.NoError(t, err)
	books = svc.Books()
	require.Len(t, books, 2)
	assert.Equal(t, "Foundation", books[0].Title)
	require.NotNil(t, books[0].Year)
	assert.Equal(t, 1951, *books[0].Year)
	assert.Equal(t, "Dune", books[1].Title)

	require.NoError(t, svc.Delete(dune.ID))
	books = svc.Books()
	require.Len(t, books, 1)
	assert.Equal(t, "Foundation", books[0].Title)

	svc.ClearAll(answer(true, &prompts))
	assert.Empty(t, svc.Books())

	assert.Equal(t, 4, *changes)
	assert.Equal(t, []string{KeyBookCreated, KeyBookCreated, KeyBookDeleted, KeyBooksCleared}, notifier.keys)
}

func TestService_ImplementsCatalog(t *testing.T) {
	var _ Catalog = NewService(&memoryRepo{}, nil)
}
