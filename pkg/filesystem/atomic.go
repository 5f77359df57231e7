package filesystem

import (
	"io/fs"

	"github.com/perfkit/tunectl/pkg/types"
)

// WriteAtomic replaces path's content via a sibling temp file and
// rename, so an I/O failure mid-write never leaves the destination
// with partial bytes. Both the apply and restore paths write through
// this.
func WriteAtomic(filesystem types.FS, path string, data []byte, perm fs.FileMode) error {
	tmp := path + ".tmp"
	if err := filesystem.WriteFile(tmp, data, perm); err != nil {
		// Leave no temp file behind on failure.
		_ = filesystem.Remove(tmp)
		return err
	}
	if err := filesystem.Rename(tmp, path); err != nil {
		_ = filesystem.Remove(tmp)
		return err
	}
	return nil
}
