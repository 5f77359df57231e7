package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/perfkit/tunectl/pkg/config"
	"github.com/perfkit/tunectl/pkg/filesystem"
	"github.com/perfkit/tunectl/pkg/logging"
	"github.com/perfkit/tunectl/pkg/output"
	"github.com/perfkit/tunectl/pkg/paths"
)

// Set via ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	verbosity  int
	dryRun     bool
	configPath string

	rootCmd = &cobra.Command{
		Use:   "tunectl",
		Short: "Apply and roll back host performance tuning profiles",
		Long: `tunectl applies a chosen performance tuning profile to this host by
writing sysctl, udev and modprobe configuration. Every file it
overwrites is snapshotted first, so a full rollback is always
available with "tunectl rollback".`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Errors have already been rendered
// when this returns; the caller only maps them to the exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		output.NewTerminalRenderer().RenderError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", paths.ConfigFile, "Tool configuration file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(rollbackCmd)
	rootCmd.AddCommand(profilesCmd)
}

// loadConfig loads the tool configuration for a command run.
func loadConfig() (*config.Config, error) {
	return config.Load(filesystem.NewOS(), configPath)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tunectl version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}
