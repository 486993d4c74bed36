package ports

import "github.com/oleksandr-romashko/libretto/internal/domain"

// BookPresenter renders a list of books somewhere visible (log, terminal, ...).
type BookPresenter interface {
	// ShowBooks emits one line per book, or a single empty-shelf line when
	// the list is empty.
	ShowBooks(books []domain.Book) error
}
