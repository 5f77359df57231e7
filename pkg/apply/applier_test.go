package apply_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfkit/tunectl/pkg/apply"
	"github.com/perfkit/tunectl/pkg/testutil"
	"github.com/perfkit/tunectl/pkg/types"
)

func testProfile() *types.Profile {
	return &types.Profile{
		Name:    "Test",
		Ordinal: 1,
		Actions: []types.Action{
			types.WriteFile("sysctl", "Write sysctl", "/etc/sysctl.d/99-test.conf", "vm.swappiness = 10"),
			types.AppendLine("module", "Autoload msr", "/etc/modules-load.d/test.conf", "msr"),
			types.RunCommand("install", "Install package", "pacman", "-S", "--needed", "--noconfirm", "tuned"),
			types.RunCommand("reload", "Reload sysctl", "sysctl", "--system"),
		},
	}
}

func TestApplyRunsActionsInOrder(t *testing.T) {
	fs := testutil.NewTestFS()
	runner := testutil.NewRecordingRunner()
	applier := apply.New(fs, runner)
	session := types.NewSession("Test", false)

	report := applier.Apply(session, testProfile())

	require.Len(t, report.Results, 4)
	for _, result := range report.Results {
		assert.Equal(t, types.StatusSuccess, result.Status, result.ActionID)
	}
	assert.Equal(t, []string{
		"pacman -S --needed --noconfirm tuned",
		"sysctl --system",
	}, runner.CommandLines())

	testutil.RequireContent(t, fs, "/etc/sysctl.d/99-test.conf", "vm.swappiness = 10\n")
	testutil.RequireContent(t, fs, "/etc/modules-load.d/test.conf", "msr\n")

	assert.Equal(t, session.ID, report.SessionID)
	assert.Equal(t, "Test", report.Profile)
	assert.False(t, report.HasFailures())
	assert.False(t, report.FinishedAt.IsZero())
}

func TestApplyContinuesAfterCommandFailure(t *testing.T) {
	fs := testutil.NewTestFS()
	runner := testutil.NewRecordingRunner().FailOn("pacman")
	applier := apply.New(fs, runner)

	report := applier.Apply(types.NewSession("Test", false), testProfile())

	require.Len(t, report.Results, 4)
	assert.Equal(t, types.StatusFailed, report.Results[2].Status)
	assert.Contains(t, report.Results[2].Error, "EXTERNAL_COMMAND")

	// The failing install must not stop the following reload.
	assert.Equal(t, types.StatusSuccess, report.Results[3].Status)
	assert.True(t, runner.Ran("sysctl"))

	success, skipped, failed := report.Counts()
	assert.Equal(t, 3, success)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 1, failed)
	assert.True(t, report.HasFailures())
}

func TestApplyRecordsSkippedAppends(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFile(t, fs, "/etc/modules-load.d/test.conf", "msr\n")
	applier := apply.New(fs, testutil.NewRecordingRunner())

	report := applier.Apply(types.NewSession("Test", false), testProfile())

	assert.Equal(t, types.StatusSkipped, report.Results[1].Status)
	assert.Equal(t, "already applied", report.Results[1].Detail)
}

func TestApplyDryRunTouchesNothing(t *testing.T) {
	fs := testutil.NewTestFS()
	runner := testutil.NewRecordingRunner()
	applier := apply.New(fs, runner)

	report := applier.Apply(types.NewSession("Test", true), testProfile())

	require.Len(t, report.Results, 4)
	for _, result := range report.Results {
		assert.Equal(t, types.StatusSkipped, result.Status)
		assert.Equal(t, "dry run", result.Detail)
	}
	assert.Empty(t, runner.Calls)
	testutil.RequireNotExists(t, fs, "/etc/sysctl.d/99-test.conf")
}

func TestApplyUnknownActionKindIsRecordedNotFatal(t *testing.T) {
	applier := apply.New(testutil.NewTestFS(), testutil.NewRecordingRunner())
	profile := &types.Profile{
		Name: "Broken",
		Actions: []types.Action{
			{ID: "bogus", Summary: "Bogus", Kind: types.ActionKind("bogus")},
			types.AppendLine("module", "Autoload msr", "/etc/modules-load.d/test.conf", "msr"),
		},
	}

	report := applier.Apply(types.NewSession("Broken", false), profile)

	require.Len(t, report.Results, 2)
	assert.Equal(t, types.StatusFailed, report.Results[0].Status)
	assert.Equal(t, types.StatusSuccess, report.Results[1].Status)
}
