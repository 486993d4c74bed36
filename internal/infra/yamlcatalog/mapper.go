package yamlcatalog

import (
	"fmt"
	"strings"

	"github.com/oleksandr-romashko/libretto/internal/domain"
)

// mapCatalog converts the DTO into domain books, preserving file order.
// A record without a title is rejected: the title is the only removal key,
// so an untitled book could never be removed again.
func mapCatalog(path string, dto YAMLCatalog) ([]domain.Book, error) {
	out := make([]domain.Book, 0, len(dto.Books))

	for i, b := range dto.Books {
		if strings.TrimSpace(b.Title) == "" {
			return nil, &domain.OpError{
				Op:   "catalog.map",
				Kind: domain.KindInvalidInput,
				Path: path,
				Err:  fmt.Errorf("book %d: missing title", i),
			}
		}
		out = append(out, domain.NewBook(b.Title, b.Author, b.Year))
	}

	return out, nil
}
