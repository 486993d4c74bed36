package ports

import "github.com/oleksandr-romashko/libretto/internal/domain"

// CatalogLoader loads seed books from a source (e.g., a YAML file).
type CatalogLoader interface {
	LoadCatalog(path string) ([]domain.Book, error)
}
