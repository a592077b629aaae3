package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/idgen/internal/config"
	"github.com/papapumpkin/idgen/internal/ui"
)

// synopsis is printed on a usage error.
const synopsis = "idgen <phase> <checkpoint>"

// rootCmd issues IDs and nothing else: any two words are a valid phase and
// checkpoint, so it carries no subcommands that could shadow them.
var rootCmd = &cobra.Command{
	Use:   synopsis,
	Short: "Issue the next task-trace ID",
	Long: `idgen prints a task-trace ID of the form T{counter}_phase{phase}_cp{checkpoint}
and advances the counter stored in .trace/next-id.json.

Phase and checkpoint are used verbatim, including values such as "help" or "-1".
Use idgenctl to inspect the counter, parse IDs or read the history log.`,
	Example:           "  idgen 2 1   # -> T001_phase2_cp1",
	Args:              exactArgs(2),
	PersistentPreRunE: initConfig,
	RunE:              runIssue,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// UsageError reports an invocation with the wrong number of arguments.
type UsageError struct {
	Want, Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected %d arguments, got %d", e.Want, e.Got)
}

// exactArgs is cobra.ExactArgs returning a *UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{Want: n, Got: len(args)}
		}
		return nil
	}
}

// issueArgs prepares raw command-line arguments for rootCmd. Exactly two
// arguments are always a phase and a checkpoint, so flag parsing is switched
// off for them with a leading "--".
func issueArgs(args []string) []string {
	if len(args) == 2 {
		return []string{"--", args[0], args[1]}
	}
	return args
}

// Execute runs the idgen CLI and exits non-zero on any error.
func Execute() {
	rootCmd.SetArgs(issueArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(report(rootCmd.ErrOrStderr(), err))
	}
}

// report prints err for the user and returns the process exit status.
func report(w io.Writer, err error) int {
	printer := ui.NewWriter(w, false)

	var usage *UsageError
	if errors.As(err, &usage) {
		printer.Usage(synopsis)
		return 1
	}
	printer.Error(err.Error())
	return 1
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	addConfigFlags(rootCmd)
	rootCmd.PersistentFlags().Bool("history", false, "append each issued ID to history.jsonl")
}

// addConfigFlags registers the flags shared by idgen and idgenctl.
func addConfigFlags(c *cobra.Command) {
	c.PersistentFlags().String("config", "", "config file (default .idgen.yaml)")
	c.PersistentFlags().String("state-dir", "", "directory holding the counter state (default .trace)")
	c.PersistentFlags().String("store", "", "counter store: json or sqlite (default json)")
	c.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

// initConfig points viper at the config file and environment. It runs after
// argument validation, so a usage error never touches the filesystem.
func initConfig(cmd *cobra.Command, _ []string) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".idgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
	return nil
}

// loadConfig loads configuration and applies CLI flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)
	return cfg, nil
}

// applyFlagOverrides applies CLI flag values to the loaded config. Flags a
// command does not define are left alone.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if v, _ := flags.GetString("state-dir"); v != "" {
		cfg.StateDir = v
	}
	if v, _ := flags.GetString("store"); v != "" {
		cfg.Store = v
	}
	if v, _ := flags.GetBool("history"); v {
		cfg.History = true
	}
	if v, _ := flags.GetBool("verbose"); v {
		cfg.Verbose = true
	}
}
