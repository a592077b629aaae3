package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/idgen/internal/traceid"
)

var parseCmd = &cobra.Command{
	Use:   "parse <id>",
	Short: "Split a task-trace ID into counter, phase and checkpoint",
	Long: `Splits an ID such as T001_phase2_cp1 into its fields.

When the phase itself contains "_cp", everything up to the last "_cp" is
taken as the phase.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", formatText, "output format: text, json or toml")
	ctlCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	id, err := traceid.Parse(args[0])
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	return writeFormatted(cmd.OutOrStdout(), format, id, func(w io.Writer) {
		fmt.Fprintf(w, "counter:    %d\n", id.Counter)
		fmt.Fprintf(w, "phase:      %s\n", id.Phase)
		fmt.Fprintf(w, "checkpoint: %s\n", id.Checkpoint)
	})
}
