package main

import (
	"github.com/spf13/cobra"

	"github.com/perfkit/tunectl/pkg/filesystem"
	"github.com/perfkit/tunectl/pkg/output"
	"github.com/perfkit/tunectl/pkg/preflight"
	"github.com/perfkit/tunectl/pkg/rollback"
)

var (
	rollbackRoots []string
	pruneAfter    bool
)

var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Restore files from snapshots",
	Long: `Scan the managed configuration directories for snapshot files
(<file>.bak.<timestamp>) and restore each original to its
pre-mutation content. When several snapshots exist for the same file,
the earliest one wins: it holds the content from before the first
apply. Snapshot files are kept unless --prune is given.`,
	RunE: runRollback,
}

func init() {
	rollbackCmd.Flags().StringSliceVar(&rollbackRoots, "root", nil, "Restrict the scan to these directories")
	rollbackCmd.Flags().BoolVar(&pruneAfter, "prune", false, "Remove snapshot files after a successful restore")
}

func runRollback(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := preflight.New().RequireRoot(); err != nil {
		return err
	}

	roots := cfg.SearchRoots
	if len(rollbackRoots) > 0 {
		roots = rollbackRoots
	}

	engine := rollback.New(filesystem.NewOS())
	reports, err := engine.Rollback(roots, pruneAfter)
	if err != nil {
		return err
	}

	output.NewTerminalRenderer().RenderRestoreReports(reports)
	return nil
}
