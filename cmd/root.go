package cmd

import (
	"github.com/spf13/cobra"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// envFile and versionsFile point at the two input documents of a run: the
// environment description and the companion version pins. Both default to
// their fixed relative locations.
var (
	envFile      string
	versionsFile string
)

// rootCmd is the base command for the CLI tool `bootstrap-machine`.
// Invoked without a subcommand it performs the full bootstrap run, matching
// the tool's primary usage of being executed once with no arguments.
var rootCmd = &cobra.Command{
	Use:   "bootstrap-machine",
	Short: "One-shot developer workstation bootstrap",

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	Run: func(cmd *cobra.Command, args []string) {
		runBootstrap()
	},
}

// Execute initializes flags, registers subcommands, and starts the command execution.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", config.DefaultEnvFile, "Path to the environment description file")
	rootCmd.PersistentFlags().StringVar(&versionsFile, "versions", config.DefaultVersionsFile, "Path to the version pin file")

	// Execute runs the appropriate subcommand or the default full run.
	// Errors are ignored here with `_ =` since Cobra handles them internally by default.
	_ = rootCmd.Execute()
}
