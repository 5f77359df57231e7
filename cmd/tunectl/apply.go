package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/perfkit/tunectl/pkg/apply"
	"github.com/perfkit/tunectl/pkg/external"
	"github.com/perfkit/tunectl/pkg/filesystem"
	"github.com/perfkit/tunectl/pkg/output"
	"github.com/perfkit/tunectl/pkg/preflight"
	"github.com/perfkit/tunectl/pkg/profiles"
	"github.com/perfkit/tunectl/pkg/types"
)

var skipConfirm bool

var applyCmd = &cobra.Command{
	Use:   "apply [profile]",
	Short: "Apply a tuning profile",
	Long: `Apply a tuning profile by number (1, 2) or name (balanced,
aggressive). Without an argument an interactive menu is shown.

Every config file the profile overwrites is snapshotted next to the
original as <file>.bak.<timestamp> before the write, so the run can be
reversed with "tunectl rollback". One failing action does not stop the
rest of the profile; the final report lists every action's outcome.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	renderer := output.NewTerminalRenderer()

	choice := ""
	if len(args) == 1 {
		choice = args[0]
	} else {
		choice, err = output.SelectProfile(profiles.Names())
		if err != nil {
			return err
		}
	}

	profile, err := profiles.Select(choice)
	if err != nil {
		return err
	}

	if !dryRun {
		if err := preflight.New().RequireRoot(); err != nil {
			return err
		}
	}

	if cfg.Confirm && !skipConfirm && !dryRun {
		confirmed, err := output.ConfirmApply(profile.Name)
		if err != nil {
			return err
		}
		if !confirmed {
			cmd.Println("Aborted, no changes made.")
			return nil
		}
	}

	session := types.NewSession(profile.Name, dryRun)
	applier := apply.New(filesystem.NewOS(), external.NewExecRunner())
	report := applier.Apply(session, profile)

	renderer.RenderSessionReport(report)

	if !dryRun {
		if path, err := output.ExportSessionReport(filesystem.NewOS(), cfg.ReportDir, report); err != nil {
			log.Warn().Err(err).Msg("Could not export session report")
		} else {
			cmd.Printf("Report written to %s\n", path)
		}
	}

	// Per-action failures are already in the report; the session
	// itself completed.
	return nil
}
