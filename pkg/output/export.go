package output

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/perfkit/tunectl/pkg/logging"
	"github.com/perfkit/tunectl/pkg/types"
)

// ExportSessionReport writes the report as YAML into dir, named after
// the session id, and returns the written path. Export failures are
// reported but never block the run: the terminal report has already
// been shown.
func ExportSessionReport(filesystem types.FS, dir string, report *types.SessionReport) (string, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "encoding session report")
	}

	if err := filesystem.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "creating report dir %s", dir)
	}

	path := filepath.Join(dir, fmt.Sprintf("tunectl-%s.yaml", report.SessionID))
	if err := filesystem.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "writing report %s", path)
	}

	logger := logging.GetLogger("output")
	logger.Info().Str("path", path).Msg("Session report exported")
	return path, nil
}
