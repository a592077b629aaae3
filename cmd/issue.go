package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/idgen/internal/config"
	"github.com/papapumpkin/idgen/internal/history"
	"github.com/papapumpkin/idgen/internal/state"
	"github.com/papapumpkin/idgen/internal/traceid"
	"github.com/papapumpkin/idgen/internal/ui"
)

// runIssue issues one ID: load, format, store counter+1, then print.
func runIssue(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	kind, err := state.ParseKind(cfg.Store)
	if err != nil {
		return err
	}
	printer := ui.NewWriter(cmd.ErrOrStderr(), cfg.Verbose)
	ctx := cmd.Context()

	store, err := state.Open(ctx, kind, cfg.StateDir)
	if err != nil {
		return err
	}
	defer store.Close()
	printer.Info(fmt.Sprintf("counter store: %s (%s)", store.Path(), kind))

	id, err := traceid.NewGenerator(store).Next(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	printer.Issued(id, store.Path())

	if cfg.History {
		recordHistory(printer, cfg, id)
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

// recordHistory appends id to the history log. The counter is already
// advanced at this point, so a failure only warns.
func recordHistory(printer *ui.Printer, cfg config.Config, id traceid.ID) {
	em, err := history.NewEmitter(filepath.Join(cfg.StateDir, history.FileName))
	if err != nil {
		printer.Warn(err.Error())
		return
	}
	defer em.Close()
	if err := em.Append(id); err != nil {
		printer.Warn(err.Error())
	}
}
