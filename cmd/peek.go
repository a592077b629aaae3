package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/idgen/internal/state"
)

var peekCmd = &cobra.Command{
	Use:   "peek",
	Short: "Show the next counter value without advancing it",
	Args:  cobra.NoArgs,
	RunE:  runPeek,
}

func init() {
	peekCmd.Flags().String("format", formatText, "output format: text, json or toml")
	ctlCmd.AddCommand(peekCmd)
}

// peekResult mirrors the on-disk counter record.
type peekResult struct {
	Next int `json:"next" toml:"next"`
}

func runPeek(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	kind, err := state.ParseKind(cfg.Store)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	next := 1
	// Peeking must not create the state directory.
	if _, err := os.Stat(cfg.StateDir); err == nil {
		store, err := state.Open(cmd.Context(), kind, cfg.StateDir)
		if err != nil {
			return err
		}
		defer store.Close()
		if next, err = store.Load(cmd.Context()); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", cfg.StateDir, err)
	}

	return writeFormatted(cmd.OutOrStdout(), format, peekResult{Next: next}, func(w io.Writer) {
		fmt.Fprintln(w, next)
	})
}
