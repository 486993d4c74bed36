package cli

import (
	"github.com/spf13/cobra"

	"github.com/oleksandr-romashko/libretto/internal/infra/logger"
	"github.com/oleksandr-romashko/libretto/internal/infra/logpresenter"
	"github.com/oleksandr-romashko/libretto/internal/infra/memstore"
	"github.com/oleksandr-romashko/libretto/internal/ui/tui"
	"github.com/oleksandr-romashko/libretto/internal/usecase"
)

func newTUICmd(debug *bool, catalogPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the shelf in a full-screen view",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, cleanup := initState(*debug)
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			store := memstore.New()

			if *catalogPath != "" {
				library := usecase.NewLibrary(store, logpresenter.New(logger.L()))
				if err := seedCatalog(library, *catalogPath); err != nil {
					return err
				}
			}

			return tui.Run(tui.Deps{
				Store:  store,
				Logger: logger.L(),
				Debug:  *debug,
			})
		},
	}
}
