package usecase

import (
	"github.com/oleksandr-romashko/libretto/internal/domain"
	"github.com/oleksandr-romashko/libretto/internal/ports"
)

// Library mediates between callers and an injected storage/presenter pair.
// It holds no book state of its own.
type Library struct {
	storage   ports.BookStorage
	presenter ports.BookPresenter
}

var _ ports.Library = (*Library)(nil)

func NewLibrary(storage ports.BookStorage, presenter ports.BookPresenter) *Library {
	return &Library{
		storage:   storage,
		presenter: presenter,
	}
}

func (l *Library) AddBook(title, author, year string) error {
	return l.storage.Add(domain.NewBook(title, author, year))
}

func (l *Library) RemoveBook(title string) error {
	return l.storage.RemoveByTitle(title)
}

func (l *Library) ShowBooks() error {
	books, err := l.storage.List()
	if err != nil {
		return err
	}
	return l.presenter.ShowBooks(books)
}
