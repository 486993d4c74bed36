// Package logpresenter renders books as informational log lines.
package logpresenter

import (
	"log/slog"

	"github.com/oleksandr-romashko/libretto/internal/domain"
	"github.com/oleksandr-romashko/libretto/internal/ports"
)

const emptyShelfMessage = "library is empty"

type Presenter struct {
	log *slog.Logger
}

var _ ports.BookPresenter = (*Presenter)(nil)

func New(log *slog.Logger) *Presenter {
	return &Presenter{log: log}
}

// ShowBooks logs one line per book in order, or a single empty-shelf line.
func (p *Presenter) ShowBooks(books []domain.Book) error {
	if len(books) == 0 {
		p.log.Info(emptyShelfMessage)
		return nil
	}
	for _, b := range books {
		p.log.Info(b.String())
	}
	return nil
}
