package vehiclecli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oleksandr-romashko/libretto/internal/vehicles"
)

func newStartCmd(debug *bool) *cobra.Command {
	var region string
	var makeName string
	var model string
	var kind string

	c := &cobra.Command{
		Use:   "start",
		Short: "Build one vehicle and start its engine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newConsoleLogger(cmd, *debug)

			factory, err := vehicles.FactoryFor(region, log)
			if err != nil {
				return err
			}

			var v vehicles.Vehicle
			switch strings.ToLower(strings.TrimSpace(kind)) {
			case "car":
				v = factory.CreateCar(makeName, model)
			case "motorcycle":
				v = factory.CreateMotorcycle(makeName, model)
			default:
				return fmt.Errorf("unknown vehicle type %q (expected car|motorcycle)", kind)
			}

			v.StartEngine()
			return nil
		},
	}

	c.Flags().StringVarP(&region, "region", "r", "us", "Regional spec: us|eu")
	c.Flags().StringVar(&makeName, "make", "", "Vehicle make (required)")
	c.Flags().StringVar(&model, "model", "", "Vehicle model (required)")
	c.Flags().StringVarP(&kind, "type", "t", "car", "Vehicle type: car|motorcycle")

	_ = c.MarkFlagRequired("make")
	_ = c.MarkFlagRequired("model")
	return c
}
