package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// ctlCmd groups the read-only tools around idgen's state. They live in a
// separate binary so their names never collide with a phase value.
var ctlCmd = &cobra.Command{
	Use:   "idgenctl",
	Short: "Inspect idgen's counter and history",
	Long: `idgenctl reads the state kept by idgen without issuing IDs.

It honours the same .idgen.yaml, IDGEN_* variables and --state-dir/--store
flags as idgen.`,
	PersistentPreRunE: initConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	ctlCmd.CompletionOptions.DisableDefaultCmd = true
	addConfigFlags(ctlCmd)
}

// ExecuteCtl runs the idgenctl CLI and exits non-zero on any error.
func ExecuteCtl() {
	if err := ctlCmd.Execute(); err != nil {
		os.Exit(report(ctlCmd.ErrOrStderr(), err))
	}
}
