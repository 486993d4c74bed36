// Package memstore is the in-memory BookStorage adapter. Its lifetime is
// the process run; nothing is persisted.
package memstore

import (
	"github.com/oleksandr-romashko/libretto/internal/domain"
	"github.com/oleksandr-romashko/libretto/internal/ports"
)

type Store struct {
	books []domain.Book
}

var _ ports.BookStorage = (*Store)(nil)

func New() *Store {
	return &Store{books: []domain.Book{}}
}

// Add appends the book, keeping insertion order. An exact duplicate
// (all three fields equal) is skipped.
func (s *Store) Add(book domain.Book) error {
	for _, b := range s.books {
		if b == book {
			return nil
		}
	}
	s.books = append(s.books, book)
	return nil
}

// RemoveByTitle drops every book whose title matches exactly. An absent
// title is a no-op.
func (s *Store) RemoveByTitle(title string) error {
	kept := s.books[:0]
	for _, b := range s.books {
		if b.Title != title {
			kept = append(kept, b)
		}
	}
	s.books = kept
	return nil
}

// List returns a copy so callers cannot mutate the collection behind the
// interface's back.
func (s *Store) List() ([]domain.Book, error) {
	out := make([]domain.Book, len(s.books))
	copy(out, s.books)
	return out, nil
}
