package ports

import "github.com/oleksandr-romashko/libretto/internal/domain"

// BookStorage stores an ordered collection of books. Implementations that
// cannot fail (in-memory) return nil errors; the error surface exists so a
// file- or database-backed store satisfies the same contract.
type BookStorage interface {
	// Add appends a book. An exact duplicate (same title, author, and year)
	// is silently skipped.
	Add(book domain.Book) error

	// RemoveByTitle removes every book whose title matches exactly.
	// Removing an absent title is a no-op.
	RemoveByTitle(title string) error

	// List returns the stored books in insertion order. On success the
	// result is never nil and is safe for the caller to retain.
	List() ([]domain.Book, error)
}
