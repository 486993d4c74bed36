package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksandr-romashko/libretto/internal/domain"
	"github.com/oleksandr-romashko/libretto/internal/infra/memstore"
	"github.com/oleksandr-romashko/libretto/internal/ports"
)

type capturePresenter struct {
	shown [][]domain.Book
}

func (c *capturePresenter) ShowBooks(books []domain.Book) error {
	c.shown = append(c.shown, books)
	return nil
}

// indexedStore is a second, structurally different BookStorage used to
// check that the Library behaves identically regardless of the store.
type indexedStore struct {
	order  []domain.Book
	titles map[string]int
}

var _ ports.BookStorage = (*indexedStore)(nil)

func newIndexedStore() *indexedStore {
	return &indexedStore{titles: map[string]int{}}
}

func (s *indexedStore) Add(book domain.Book) error {
	for _, b := range s.order {
		if b == book {
			return nil
		}
	}
	s.order = append(s.order, book)
	s.titles[book.Title]++
	return nil
}

func (s *indexedStore) RemoveByTitle(title string) error {
	if s.titles[title] == 0 {
		return nil
	}
	kept := s.order[:0]
	for _, b := range s.order {
		if b.Title != title {
			kept = append(kept, b)
		}
	}
	s.order = kept
	delete(s.titles, title)
	return nil
}

func (s *indexedStore) List() ([]domain.Book, error) {
	out := make([]domain.Book, len(s.order))
	copy(out, s.order)
	return out, nil
}

func TestAddBookDelegatesToStorage(t *testing.T) {
	store := memstore.New()
	lib := NewLibrary(store, &capturePresenter{})

	require.NoError(t, lib.AddBook("Dune", "Frank Herbert", "1965"))

	books, err := store.List()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, domain.NewBook("Dune", "Frank Herbert", "1965"), books[0])
}

func TestShowBooksUsesPresenter(t *testing.T) {
	store := memstore.New()
	presenter := &capturePresenter{}
	lib := NewLibrary(store, presenter)

	require.NoError(t, lib.AddBook("Dune", "Frank Herbert", "1965"))
	require.NoError(t, lib.ShowBooks())

	require.Len(t, presenter.shown, 1)
	require.Len(t, presenter.shown[0], 1)
	assert.Equal(t, "Dune", presenter.shown[0][0].Title)
}

func TestRemoveBookAbsentTitleIsNoOp(t *testing.T) {
	store := memstore.New()
	lib := NewLibrary(store, &capturePresenter{})

	require.NoError(t, lib.AddBook("Dune", "Frank Herbert", "1965"))
	require.NoError(t, lib.RemoveBook("Neuromancer"))

	books, _ := store.List()
	assert.Len(t, books, 1)
}

// The DIP check: drive two different stores through the same scripted
// operations and require identical presenter-visible behavior.
func TestStorageSubstitutability(t *testing.T) {
	run := func(storage ports.BookStorage) [][]domain.Book {
		presenter := &capturePresenter{}
		lib := NewLibrary(storage, presenter)

		require.NoError(t, lib.AddBook("Dune", "Frank Herbert", "1965"))
		require.NoError(t, lib.AddBook("Hyperion", "Dan Simmons", "1989"))
		require.NoError(t, lib.AddBook("Dune", "Frank Herbert", "1965")) // duplicate
		require.NoError(t, lib.ShowBooks())
		require.NoError(t, lib.RemoveBook("Dune"))
		require.NoError(t, lib.RemoveBook("missing"))
		require.NoError(t, lib.ShowBooks())

		return presenter.shown
	}

	a := run(memstore.New())
	b := run(newIndexedStore())

	assert.Equal(t, a, b, "manager behavior must not depend on the concrete store")
}
