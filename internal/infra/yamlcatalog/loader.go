// Package yamlcatalog loads seed books from a YAML file.
package yamlcatalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oleksandr-romashko/libretto/internal/domain"
	"github.com/oleksandr-romashko/libretto/internal/ports"
)

type Loader struct{}

var _ ports.CatalogLoader = (*Loader)(nil)

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) LoadCatalog(path string) ([]domain.Book, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "catalog.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLCatalog
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "catalog.load",
			Kind: domain.KindInvalidInput,
			Path: path,
			Err:  err,
		}
	}

	return mapCatalog(path, dto)
}
