package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/idgen/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the log of issued IDs",
	Long: `Prints the IDs recorded in history.jsonl inside the state directory.
Recording is enabled with "idgen --history" or "history: true" in .idgen.yaml.

With --follow (-f), keeps watching the log for new IDs (like tail -f).`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolP("follow", "f", false, "follow the log for new IDs")
	ctlCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	follow, _ := cmd.Flags().GetBool("follow")

	path := filepath.Join(cfg.StateDir, history.FileName)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("history: no log at %s (enable with idgen --history)", path)
		}
		return fmt.Errorf("history: open %s: %w", path, err)
	}
	defer f.Close()

	out := cmd.OutOrStdout()
	if !follow {
		recs, err := history.ReadAll(f)
		for _, r := range recs {
			printRecord(out, r)
		}
		return err
	}

	// A line still being written is left for Follow to finish.
	recs, offset, err := history.ReadComplete(f)
	for _, r := range recs {
		printRecord(out, r)
	}
	if err != nil {
		return err
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("history: seek %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return history.Follow(ctx, f, func(r history.Record) {
		printRecord(out, r)
	})
}

// printRecord prints one history line: timestamp then ID.
func printRecord(w io.Writer, r history.Record) {
	fmt.Fprintf(w, "%s  %s\n", r.Timestamp.Format(time.RFC3339), r.ID)
}
