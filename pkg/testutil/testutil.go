// Package testutil provides shared helpers for tunectl tests: an
// in-memory filesystem behind the types.FS interface, content
// assertions, and a scriptable external-command runner.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/perfkit/tunectl/pkg/filesystem"
	"github.com/perfkit/tunectl/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewReadOnlyTestFS creates a filesystem pre-populated via populate
// and then made read-only, for exercising write-failure paths.
func NewReadOnlyTestFS(populate func(fs types.FS)) types.FS {
	base := afero.NewMemMapFs()
	if populate != nil {
		populate(filesystem.NewAferoFS(base))
	}
	return filesystem.NewAferoFS(afero.NewReadOnlyFs(base))
}

// WriteFile writes content to path on fs, failing the test on error.
func WriteFile(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
}

// ReadFile reads path from fs, failing the test on error.
func ReadFile(t *testing.T, fs types.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// RequireContent asserts that path holds exactly content.
func RequireContent(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	require.Equal(t, content, ReadFile(t, fs, path))
}

// RequireNotExists asserts that path is absent.
func RequireNotExists(t *testing.T, fs types.FS, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	require.Error(t, err, "expected %s to be absent", path)
}
