// Package fileops contains the two file mutation primitives of the
// engine: full-content writes and idempotent line appends. Both
// snapshot existing content before touching it, so every mutation is
// reversible via the snapshot store.
package fileops

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/perfkit/tunectl/pkg/filesystem"
	"github.com/perfkit/tunectl/pkg/logging"
	"github.com/perfkit/tunectl/pkg/snapshot"
	"github.com/perfkit/tunectl/pkg/types"
)

const defaultPerm fs.FileMode = 0644

// Writer applies desired full content to config files.
type Writer struct {
	fs    types.FS
	store *snapshot.Store
}

// NewWriter creates a writer over the given filesystem and store.
func NewWriter(filesystem types.FS, store *snapshot.Store) *Writer {
	return &Writer{fs: filesystem, store: store}
}

// Write replaces the content of path, in strict order: snapshot the
// current content first, then create parent directories, then replace
// the file. If the snapshot step fails the file is left untouched —
// losing the original bytes silently is the one thing this tool must
// never do. The written content always ends with exactly one newline.
func (w *Writer) Write(path, content string) (*snapshot.Ref, error) {
	if !filepath.IsAbs(path) {
		return nil, errors.Newf(errors.ErrInvalidPath, "write target must be absolute: %s", path)
	}

	log := logging.GetLogger("fileops")

	ref, err := w.store.Take(path)
	if err != nil {
		return nil, err
	}

	if err := w.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return ref, errors.Wrapf(err, errors.ErrDirCreate, "creating parent of %s", path)
	}

	perm := defaultPerm
	if info, err := w.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := filesystem.WriteAtomic(w.fs, path, []byte(normalize(content)), perm); err != nil {
		return ref, errors.Wrapf(err, errors.ErrWriteFailure, "writing %s", path)
	}

	log.Info().Str("path", path).Msg("File written")
	return ref, nil
}

// normalize trims trailing newlines and appends exactly one.
func normalize(content string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
