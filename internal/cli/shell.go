package cli

import (
	"github.com/spf13/cobra"

	"github.com/oleksandr-romashko/libretto/internal/infra/logger"
	"github.com/oleksandr-romashko/libretto/internal/infra/logpresenter"
	"github.com/oleksandr-romashko/libretto/internal/infra/memstore"
	"github.com/oleksandr-romashko/libretto/internal/infra/sessionstore"
	"github.com/oleksandr-romashko/libretto/internal/shell"
	"github.com/oleksandr-romashko/libretto/internal/usecase"
)

func runShell(cmd *cobra.Command, catalogPath string, noSave, debug bool) error {
	paths, cleanup := initState(debug)
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}

	store := memstore.New()
	library := usecase.NewLibrary(store, logpresenter.New(logger.L()))

	if catalogPath != "" {
		if err := seedCatalog(library, catalogPath); err != nil {
			return err
		}
	}

	manager := shell.NewManager(library, cmd.InOrStdin(), cmd.OutOrStdout(), logger.L())
	if err := manager.Run(cmd.Context()); err != nil {
		return err
	}

	if noSave {
		return nil
	}

	books, err := store.List()
	if err != nil {
		return err
	}

	sessions := sessionstore.NewJSONStore(paths.Sessions, sessionstore.WithIndex(true))
	id, err := sessions.SaveSession(manager.Transcript(len(books)))
	if err != nil {
		// A failed save must not turn a clean session into a failed run.
		logger.L().Error("session.save", "err", err)
		return nil
	}

	logger.L().Info("session.saved", "id", id)
	return nil
}
