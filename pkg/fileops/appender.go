package fileops

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/perfkit/tunectl/pkg/filesystem"
	"github.com/perfkit/tunectl/pkg/logging"
	"github.com/perfkit/tunectl/pkg/snapshot"
	"github.com/perfkit/tunectl/pkg/types"
)

// Appender adds single lines to config files without duplicating them.
type Appender struct {
	fs    types.FS
	store *snapshot.Store
}

// NewAppender creates an appender over the given filesystem and store.
func NewAppender(filesystem types.FS, store *snapshot.Store) *Appender {
	return &Appender{fs: filesystem, store: store}
}

// AppendIfAbsent appends line to path unless that exact line is
// already present, matched as a whole line. A missing file is treated
// as empty. Returns StatusSkipped when the line was already there,
// StatusSuccess when it was appended. An existing file is snapshotted
// before the first append, so appends are covered by rollback just
// like full writes.
func (a *Appender) AppendIfAbsent(path, line string) (types.ActionStatus, error) {
	if !filepath.IsAbs(path) {
		return types.StatusFailed, errors.Newf(errors.ErrInvalidPath, "append target must be absolute: %s", path)
	}
	if line == "" || strings.ContainsRune(line, '\n') {
		return types.StatusFailed, errors.Newf(errors.ErrInvalidPath, "append line must be a single non-empty line: %q", line)
	}

	log := logging.GetLogger("fileops")

	existing := ""
	exists := true
	data, err := a.fs.ReadFile(path)
	switch {
	case err == nil:
		existing = string(data)
	case os.IsNotExist(err):
		exists = false
	default:
		return types.StatusFailed, errors.Wrapf(err, errors.ErrAppendFailure, "reading %s", path)
	}

	if slices.Contains(strings.Split(strings.TrimRight(existing, "\n"), "\n"), line) {
		log.Debug().Str("path", path).Str("line", line).Msg("Line already present, skipping")
		return types.StatusSkipped, nil
	}

	if exists {
		if _, err := a.store.Take(path); err != nil {
			return types.StatusFailed, err
		}
	}

	if err := a.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return types.StatusFailed, errors.Wrapf(err, errors.ErrDirCreate, "creating parent of %s", path)
	}

	content := existing
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += line + "\n"

	perm := defaultPerm
	if info, err := a.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := filesystem.WriteAtomic(a.fs, path, []byte(content), perm); err != nil {
		return types.StatusFailed, errors.Wrapf(err, errors.ErrAppendFailure, "appending to %s", path)
	}

	log.Info().Str("path", path).Str("line", line).Msg("Line appended")
	return types.StatusSuccess, nil
}
