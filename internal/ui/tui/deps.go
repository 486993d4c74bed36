package tui

import (
	"log/slog"

	"github.com/oleksandr-romashko/libretto/internal/ports"
)

type Deps struct {
	// Store is the shelf the browser reads and mutates. Only the port is
	// known here; the concrete store is the caller's choice.
	Store ports.BookStorage

	Logger *slog.Logger
	Debug  bool
}
