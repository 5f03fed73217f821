package cmd

import (
	"github.com/spf13/cobra"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/installer"
	"bootstrap-machine/internal/logger"
	"bootstrap-machine/internal/platform"
)

// doctorCmd inspects the inputs of a run without performing any side
// effect: it loads and reports the configuration, runs the platform check
// (reported, not fatal here), and lists the catalogue in execution order.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and platform without provisioning anything",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(envFile, versionsFile)
		if err != nil {
			logger.Fatal("[FATAL] %v\n", err)
			return
		}
		logger.Info("[INFO] Loaded %d configuration keys from %s + %s\n", cfg.Len(), envFile, versionsFile)

		ctx, err := installer.NewContext(cfg)
		if err != nil {
			logger.Fatal("[FATAL] %v\n", err)
			return
		}

		if err := platform.Check(ctx.Run); err != nil {
			logger.Warn("[WARN] %v (a real run would abort here)\n", err)
		}

		logger.Info("[INFO] Action catalogue, in execution order:\n")
		for i, action := range installer.Catalogue() {
			logger.Info("[INFO]   %d. %s\n", i+1, action.Name())
		}
	},
}

// init registers the subcommand with the root command.
func init() {
	rootCmd.AddCommand(doctorCmd)
}
