package snapshot

import (
	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/perfkit/tunectl/pkg/filesystem"
	"github.com/perfkit/tunectl/pkg/logging"
)

// RestoreEntry records the outcome of restoring one original path.
type RestoreEntry struct {
	OriginalPath string `yaml:"path"`
	SnapshotPath string `yaml:"snapshot"`
	Error        string `yaml:"error,omitempty"`
}

// Restored reports whether this entry's file was written back.
func (e RestoreEntry) Restored() bool { return e.Error == "" }

// RestoreReport aggregates the outcome of a restore run.
type RestoreReport struct {
	Root    string         `yaml:"root"`
	Entries []RestoreEntry `yaml:"entries"`

	// Pruned lists snapshot files removed after a successful restore,
	// only when pruning was requested.
	Pruned []string `yaml:"pruned,omitempty"`
}

// Counts returns the number of restored and failed entries.
func (r *RestoreReport) Counts() (restored, failed int) {
	for _, e := range r.Entries {
		if e.Restored() {
			restored++
		} else {
			failed++
		}
	}
	return restored, failed
}

// RestoreAll copies snapshot content back onto the original paths for
// every snapshot found under root. When several snapshots exist for
// the same original, the earliest one wins: it holds the content from
// before the first mutation, which is what a rollback should recover.
// Individual restore failures are recorded and do not stop the
// remaining restorations; only a failed scan is an error.
func (s *Store) RestoreAll(root string) (*RestoreReport, error) {
	log := logging.GetLogger("snapshot")

	refs, err := s.List(root)
	if err != nil {
		return nil, err
	}

	report := &RestoreReport{Root: root}
	for _, group := range groupByOriginal(refs) {
		earliest := group[0]
		entry := RestoreEntry{
			OriginalPath: earliest.OriginalPath,
			SnapshotPath: earliest.SnapshotPath,
		}
		if err := s.restoreOne(earliest); err != nil {
			entry.Error = err.Error()
			log.Error().Err(err).Str("path", earliest.OriginalPath).Msg("Restore failed")
		} else {
			log.Info().Str("path", earliest.OriginalPath).Str("snapshot", earliest.SnapshotPath).Msg("Restored")
		}
		report.Entries = append(report.Entries, entry)
	}
	return report, nil
}

// Prune removes every snapshot file under root whose original path was
// successfully restored in the given report. Snapshots are otherwise
// never deleted by the engine.
func (s *Store) Prune(root string, report *RestoreReport) error {
	restored := make(map[string]bool)
	for _, e := range report.Entries {
		if e.Restored() {
			restored[e.OriginalPath] = true
		}
	}

	refs, err := s.List(root)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		if !restored[ref.OriginalPath] {
			continue
		}
		if err := s.fs.Remove(ref.SnapshotPath); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "pruning %s", ref.SnapshotPath)
		}
		report.Pruned = append(report.Pruned, ref.SnapshotPath)
	}
	return nil
}

func (s *Store) restoreOne(ref Ref) error {
	data, err := s.fs.ReadFile(ref.SnapshotPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRestoreFailure, "reading snapshot %s", ref.SnapshotPath)
	}
	info, err := s.fs.Stat(ref.SnapshotPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRestoreFailure, "stat snapshot %s", ref.SnapshotPath)
	}
	// Temp+rename, same as the apply path: a restore that fails
	// midway must leave the original untouched, never partial.
	if err := filesystem.WriteAtomic(s.fs, ref.OriginalPath, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrRestoreFailure, "restoring %s", ref.OriginalPath)
	}
	return nil
}

// groupByOriginal splits refs into per-original groups, preserving the
// oldest-first order produced by List.
func groupByOriginal(refs []Ref) [][]Ref {
	var groups [][]Ref
	index := make(map[string]int)
	for _, ref := range refs {
		i, ok := index[ref.OriginalPath]
		if !ok {
			index[ref.OriginalPath] = len(groups)
			groups = append(groups, []Ref{ref})
			continue
		}
		groups[i] = append(groups[i], ref)
	}
	return groups
}
