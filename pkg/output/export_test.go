package output_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/perfkit/tunectl/pkg/output"
	"github.com/perfkit/tunectl/pkg/testutil"
	"github.com/perfkit/tunectl/pkg/types"
)

func sampleReport() *types.SessionReport {
	return &types.SessionReport{
		SessionID:  "0b8e4f7a-test",
		Profile:    "Balanced",
		StartedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 8, 30, 12, 0, 2, 0, time.UTC),
		Results: []types.ActionResult{
			{ActionID: "sysctl-base", Summary: "Write base sysctl tuning", Status: types.StatusSuccess},
			{ActionID: "msr-autoload", Summary: "Autoload the msr module", Status: types.StatusSkipped, Detail: "already applied"},
			{ActionID: "install-tuned", Summary: "Install the tuned daemon", Status: types.StatusFailed, Error: "[EXTERNAL_COMMAND] pacman exited with status 1"},
		},
	}
}

func TestExportSessionReport(t *testing.T) {
	fs := testutil.NewTestFS()

	path, err := output.ExportSessionReport(fs, "/var/lib/tunectl/reports", sampleReport())

	require.NoError(t, err)
	assert.Equal(t, "/var/lib/tunectl/reports/tunectl-0b8e4f7a-test.yaml", path)

	var decoded types.SessionReport
	require.NoError(t, yaml.Unmarshal([]byte(testutil.ReadFile(t, fs, path)), &decoded))
	assert.Equal(t, "Balanced", decoded.Profile)
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, types.StatusFailed, decoded.Results[2].Status)
	assert.Contains(t, decoded.Results[2].Error, "EXTERNAL_COMMAND")
}

func TestRenderSessionReportPlain(t *testing.T) {
	var buf bytes.Buffer
	renderer := output.NewRenderer(&buf)

	renderer.RenderSessionReport(sampleReport())

	out := buf.String()
	assert.Contains(t, out, `Profile "Balanced"`)
	assert.Contains(t, out, "Write base sysctl tuning")
	assert.Contains(t, out, "1 applied, 1 skipped, 1 failed")
}
