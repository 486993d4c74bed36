// Package vehiclecli wires the motorpool binary: regional vehicle factories
// behind a small CLI.
package vehiclecli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleksandr-romashko/libretto/internal/buildinfo"
	"github.com/oleksandr-romashko/libretto/internal/vehicles"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "motorpool",
		Short:        "Motorpool — build market-specific vehicles",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(newConsoleLogger(cmd, debug))
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newStartCmd(&debug))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// newConsoleLogger logs to the command's error stream; engine messages are
// the program's whole observable output.
func newConsoleLogger(cmd *cobra.Command, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// runDemo mirrors the classic pairing: one EU car, one US motorcycle.
func runDemo(log *slog.Logger) error {
	eu := vehicles.NewEUFactory(log)
	us := vehicles.NewUSFactory(log)

	car := eu.CreateCar("Toyota", "Corolla")
	moto := us.CreateMotorcycle("Harley-Davidson", "Sportster")

	car.StartEngine()
	moto.StartEngine()
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String("motorpool"))
		},
	}
}
