// Package vehicles models market-specific vehicle construction. Vehicle
// types never know about regions; the regional label is stamped on by the
// factory that built them.
package vehicles

import (
	"fmt"
	"log/slog"
)

// Vehicle is anything with an engine and a display label.
type Vehicle interface {
	// StartEngine logs that the engine came to life.
	StartEngine()
	// Label is the display identity, e.g. "Toyota Corolla (EU Spec)".
	Label() string
}

type Car struct {
	Make       string
	Model      string
	RegionSpec string

	log *slog.Logger
}

var _ Vehicle = (*Car)(nil)

func (c *Car) Label() string {
	return fmt.Sprintf("%s %s (%s)", c.Make, c.Model, c.RegionSpec)
}

func (c *Car) String() string { return c.Label() }

func (c *Car) StartEngine() {
	c.log.Info(fmt.Sprintf("%s: Engine started", c.Label()))
}

type Motorcycle struct {
	Make       string
	Model      string
	RegionSpec string

	log *slog.Logger
}

var _ Vehicle = (*Motorcycle)(nil)

func (m *Motorcycle) Label() string {
	return fmt.Sprintf("%s %s (%s)", m.Make, m.Model, m.RegionSpec)
}

func (m *Motorcycle) String() string { return m.Label() }

func (m *Motorcycle) StartEngine() {
	m.log.Info(fmt.Sprintf("%s: Engine fired up", m.Label()))
}
