package catalog

import (
	"github.com/ytget/bookshelf/internal/model"
)

// Repository is the persistence the commands read from and write to.
type Repository interface {
	Load() model.Collection
	Save(books model.Collection) error
}

// Notifier shows a transient status message identified by a localization key.
type Notifier interface {
	Notify(key string)
}

// Confirmer asks the user a yes/no question and reports the answer through respond.
type Confirmer func(message string, respond func(ok bool))

// Catalog defines the command surface the UI drives.
type Catalog interface {
	SetChangeCallback(func())
	SetNotifier(Notifier)
	Books() model.Collection
	Create(form BookForm) (*model.Book, error)
	Delete(id string) error
	ClearAll(confirm Confirmer)
	Reset()
}
