package snapshot

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/perfkit/tunectl/pkg/logging"
	"github.com/perfkit/tunectl/pkg/types"
)

// Snapshot files live alongside their originals as
// <original>.bak.<token>, where the token is the nanosecond timestamp
// of the copy. The name is part of the external contract: restore
// parses it back to find the original path. Only the trailing
// ".bak.<digits>" run is the token, so a name like "x.bak.1.bak.2"
// parses as a snapshot of "x.bak.1". The engine never produces such
// names (snapshot files are never themselves snapshotted), but files
// matching the pattern under a managed root are treated as snapshots.
const suffix = ".bak."

var snapshotName = regexp.MustCompile(`^(.+)\.bak\.(\d+)$`)

// Ref identifies one recorded snapshot.
type Ref struct {
	// OriginalPath is the config file the snapshot was taken from.
	OriginalPath string

	// SnapshotPath is where the preserved bytes live.
	SnapshotPath string

	// TakenAt is decoded from the snapshot name token.
	TakenAt time.Time
}

// Store records pre-change file content and restores it on demand.
type Store struct {
	fs  types.FS
	now func() time.Time
}

// NewStore creates a snapshot store over the given filesystem.
func NewStore(filesystem types.FS) *Store {
	return &Store{fs: filesystem, now: time.Now}
}

// Take preserves the current bytes of path before it is overwritten.
// A missing file is a legitimate pristine state: Take returns
// (nil, nil) and the caller may proceed. An existing snapshot file is
// never overwritten; on a name collision the token is advanced until
// a free name is found.
func (s *Store) Take(path string) (*Ref, error) {
	if !filepath.IsAbs(path) {
		return nil, errors.Newf(errors.ErrInvalidPath, "snapshot target must be absolute: %s", path)
	}

	log := logging.GetLogger("snapshot")

	info, err := s.fs.Stat(path)
	if os.IsNotExist(err) {
		log.Debug().Str("path", path).Msg("No snapshot needed, file does not exist")
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "stat %s", path)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSnapshotFailure, "reading %s", path)
	}

	token := s.now().UnixNano()
	for {
		snapPath := path + suffix + strconv.FormatInt(token, 10)
		if _, err := s.fs.Stat(snapPath); err == nil {
			token++
			continue
		}
		if err := s.fs.WriteFile(snapPath, data, info.Mode().Perm()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrSnapshotFailure, "writing snapshot for %s", path)
		}
		log.Info().Str("path", path).Str("snapshot", snapPath).Msg("Snapshot taken")
		return &Ref{
			OriginalPath: path,
			SnapshotPath: snapPath,
			TakenAt:      time.Unix(0, token),
		}, nil
	}
}

// List enumerates every recoverable snapshot under root, oldest first.
func (s *Store) List(root string) ([]Ref, error) {
	if _, err := s.fs.Stat(root); err != nil {
		return nil, errors.Wrapf(err, errors.ErrScanFailure, "scanning %s", root)
	}

	var refs []Ref
	if err := s.walk(root, &refs); err != nil {
		return nil, errors.Wrapf(err, errors.ErrScanFailure, "scanning %s", root)
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].OriginalPath != refs[j].OriginalPath {
			return refs[i].OriginalPath < refs[j].OriginalPath
		}
		return refs[i].TakenAt.Before(refs[j].TakenAt)
	})
	return refs, nil
}

func (s *Store) walk(dir string, refs *[]Ref) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := s.walk(full, refs); err != nil {
				return err
			}
			continue
		}
		if ref, ok := parseName(full, entry); ok {
			*refs = append(*refs, ref)
		}
	}
	return nil
}

func parseName(full string, entry fs.DirEntry) (Ref, bool) {
	m := snapshotName.FindStringSubmatch(entry.Name())
	if m == nil {
		return Ref{}, false
	}
	token, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Ref{}, false
	}
	return Ref{
		OriginalPath: filepath.Join(filepath.Dir(full), m[1]),
		SnapshotPath: full,
		TakenAt:      time.Unix(0, token),
	}, true
}
