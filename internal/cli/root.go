// Package cli wires the libretto binary: the interactive shell by default,
// plus the tui and version subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleksandr-romashko/libretto/internal/infra/logger"
	"github.com/oleksandr-romashko/libretto/internal/infra/statedir"
	"github.com/oleksandr-romashko/libretto/internal/infra/yamlcatalog"
	"github.com/oleksandr-romashko/libretto/internal/ports"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var catalogPath string
	var noSave bool

	cmd := &cobra.Command{
		Use:          "libretto",
		Short:        "Libretto — an in-memory library manager",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, catalogPath, noSave, debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .libretto/logs/libretto.log")
	cmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "YAML file of books to preload")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not save a session transcript under .libretto/sessions/")

	cmd.AddCommand(newTUICmd(&debug, &catalogPath))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// initState creates the state tree and points the global logger at it.
// Logging failures are not fatal: the tool stays usable with a discarded log.
func initState(debug bool) (statedir.Paths, func() error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	paths, err := statedir.Ensure(wd)
	if err != nil {
		return statedir.Resolve(wd), nil
	}

	cleanup, _ := logger.Setup(logger.Config{Dir: paths.Logs, Debug: debug})
	return paths, cleanup
}

// seedCatalog preloads books from a YAML file through the library contract.
func seedCatalog(lib ports.Library, path string) error {
	books, err := yamlcatalog.NewLoader().LoadCatalog(path)
	if err != nil {
		return err
	}

	for _, b := range books {
		if err := lib.AddBook(b.Title, b.Author, b.Year); err != nil {
			return fmt.Errorf("seed %q: %w", b.Title, err)
		}
	}

	logger.L().Info("catalog.seeded", "path", path, "books", len(books))
	return nil
}
