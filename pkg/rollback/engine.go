// Package rollback restores files to their pre-mutation content using
// the snapshots recorded by the apply run.
package rollback

import (
	stderrors "errors"
	"io/fs"

	"github.com/perfkit/tunectl/pkg/logging"
	"github.com/perfkit/tunectl/pkg/snapshot"
	"github.com/perfkit/tunectl/pkg/types"
)

// Engine scans the managed roots for snapshots and restores originals.
type Engine struct {
	store *snapshot.Store
}

// New creates a rollback engine over the given filesystem.
func New(filesystem types.FS) *Engine {
	return &Engine{store: snapshot.NewStore(filesystem)}
}

// Rollback restores every snapshotted file under the given roots. A
// root with no snapshots (or that does not exist) contributes nothing;
// per-file restore failures are recorded in the reports and do not
// stop the remaining restorations. When prune is set, snapshot files
// of successfully restored paths are removed afterwards.
func (e *Engine) Rollback(roots []string, prune bool) ([]*snapshot.RestoreReport, error) {
	log := logging.GetLogger("rollback")

	var reports []*snapshot.RestoreReport
	for _, root := range roots {
		report, err := e.store.RestoreAll(root)
		if stderrors.Is(err, fs.ErrNotExist) {
			// A missing managed root just means nothing was ever
			// written there; scanning it is not a failure.
			log.Debug().Str("root", root).Msg("Root does not exist, skipping")
			continue
		}
		if err != nil {
			return reports, err
		}
		if prune {
			if err := e.store.Prune(root, report); err != nil {
				return reports, err
			}
		}
		reports = append(reports, report)
	}
	return reports, nil
}
