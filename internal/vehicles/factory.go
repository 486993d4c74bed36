package vehicles

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	usSpec = "US Spec"
	euSpec = "EU Spec"
)

// Factory builds vehicles carrying one fixed regional spec. Construction
// cannot fail.
type Factory interface {
	CreateCar(make, model string) Vehicle
	CreateMotorcycle(make, model string) Vehicle
}

type USFactory struct {
	log *slog.Logger
}

var _ Factory = (*USFactory)(nil)

func NewUSFactory(log *slog.Logger) *USFactory {
	return &USFactory{log: log}
}

func (f *USFactory) CreateCar(make, model string) Vehicle {
	return &Car{Make: make, Model: model, RegionSpec: usSpec, log: f.log}
}

func (f *USFactory) CreateMotorcycle(make, model string) Vehicle {
	return &Motorcycle{Make: make, Model: model, RegionSpec: usSpec, log: f.log}
}

type EUFactory struct {
	log *slog.Logger
}

var _ Factory = (*EUFactory)(nil)

func NewEUFactory(log *slog.Logger) *EUFactory {
	return &EUFactory{log: log}
}

func (f *EUFactory) CreateCar(make, model string) Vehicle {
	return &Car{Make: make, Model: model, RegionSpec: euSpec, log: f.log}
}

func (f *EUFactory) CreateMotorcycle(make, model string) Vehicle {
	return &Motorcycle{Make: make, Model: model, RegionSpec: euSpec, log: f.log}
}

// FactoryFor maps a region name to its factory. Recognized regions are
// "us" and "eu", case-insensitively.
func FactoryFor(region string, log *slog.Logger) (Factory, error) {
	switch strings.ToLower(strings.TrimSpace(region)) {
	case "us":
		return NewUSFactory(log), nil
	case "eu":
		return NewEUFactory(log), nil
	default:
		return nil, fmt.Errorf("unknown region %q (expected us|eu)", region)
	}
}
