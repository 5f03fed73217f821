package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/installer"
	"bootstrap-machine/internal/logger"
	"bootstrap-machine/internal/platform"
)

// upCmd performs the full bootstrap run explicitly. It is the same run the
// bare binary performs; the subcommand exists so `bootstrap-machine up`
// reads naturally in scripts and documentation.
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Provision the workstation (config check, platform gate, full action catalogue)",
	Run: func(cmd *cobra.Command, args []string) {
		runBootstrap()
	},
}

// runBootstrap is one complete Run: load the configuration, gate on the
// supported platform, then walk the fixed action catalogue in order. Any
// fatal condition terminates the process with a non-zero exit code; nothing
// already applied is rolled back since every action is safe to re-run.
func runBootstrap() {
	cfg, err := config.Load(envFile, versionsFile)
	if err != nil {
		logger.Fatal("[FATAL] %v\n", err)
		return
	}

	ctx, err := installer.NewContext(cfg)
	if err != nil {
		logger.Fatal("[FATAL] %v\n", err)
		return
	}

	if err := platform.Check(ctx.Run); err != nil {
		logger.Fatal("[FATAL] %v\n", err)
		return
	}

	rep := installer.RunAll(installer.Catalogue(), ctx)
	if rep.Err != nil {
		logger.Fatal("[FATAL] Bootstrap aborted at %s: %v (skipped: %s)\n",
			rep.Failed, rep.Err, strings.Join(rep.Skipped, ", "))
		return
	}

	logger.Info("[INFO] Bootstrap complete: %d actions applied, %d warnings\n",
		len(rep.Completed), rep.Warnings)
}

// init registers the subcommand with the root command.
func init() {
	rootCmd.AddCommand(upCmd)
}
