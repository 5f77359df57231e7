package rollback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfkit/tunectl/pkg/apply"
	"github.com/perfkit/tunectl/pkg/fileops"
	"github.com/perfkit/tunectl/pkg/rollback"
	"github.com/perfkit/tunectl/pkg/snapshot"
	"github.com/perfkit/tunectl/pkg/testutil"
	"github.com/perfkit/tunectl/pkg/types"
)

func TestRollbackRestoresWrittenFiles(t *testing.T) {
	fs := testutil.NewTestFS()
	writer := fileops.NewWriter(fs, snapshot.NewStore(fs))

	// First write creates the file, second one mutates it.
	_, err := writer.Write("/etc/sysctl.d/99-tunectl.conf", "k=v")
	require.NoError(t, err)
	_, err = writer.Write("/etc/sysctl.d/99-tunectl.conf", "k=v2")
	require.NoError(t, err)
	testutil.RequireContent(t, fs, "/etc/sysctl.d/99-tunectl.conf", "k=v2\n")

	reports, err := rollback.New(fs).Rollback([]string{"/etc/sysctl.d"}, false)

	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Entries, 1)
	assert.True(t, reports[0].Entries[0].Restored())
	testutil.RequireContent(t, fs, "/etc/sysctl.d/99-tunectl.conf", "k=v\n")
}

func TestRollbackSkipsMissingRoots(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFile(t, fs, "/etc/sysctl.d/a.conf.bak.100", "old\n")

	reports, err := rollback.New(fs).Rollback(
		[]string{"/etc/sysctl.d", "/etc/udev/rules.d"}, false)

	require.NoError(t, err)
	require.Len(t, reports, 1, "missing root contributes nothing")
	testutil.RequireContent(t, fs, "/etc/sysctl.d/a.conf", "old\n")
}

func TestRollbackWithPruneRemovesSnapshots(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFile(t, fs, "/etc/sysctl.d/a.conf", "new\n")
	testutil.WriteFile(t, fs, "/etc/sysctl.d/a.conf.bak.100", "old\n")

	reports, err := rollback.New(fs).Rollback([]string{"/etc/sysctl.d"}, true)

	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, []string{"/etc/sysctl.d/a.conf.bak.100"}, reports[0].Pruned)
	testutil.RequireNotExists(t, fs, "/etc/sysctl.d/a.conf.bak.100")
	testutil.RequireContent(t, fs, "/etc/sysctl.d/a.conf", "old\n")
}

// Applying a profile and rolling it back must leave the mutated files
// exactly as they were, including files the profile appended to.
func TestApplyThenRollbackRoundTrip(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFile(t, fs, "/etc/sysctl.d/99-tunectl.conf", "vm.swappiness = 60\n")
	testutil.WriteFile(t, fs, "/etc/security/limits.conf", "# defaults\n")

	profile := &types.Profile{
		Name: "Test",
		Actions: []types.Action{
			types.WriteFile("sysctl", "Write sysctl", "/etc/sysctl.d/99-tunectl.conf", "vm.swappiness = 1"),
			types.AppendLine("nofile", "Raise nofile", "/etc/security/limits.conf", "* soft nofile 1048576"),
		},
	}
	report := apply.New(fs, testutil.NewRecordingRunner()).Apply(types.NewSession("Test", false), profile)
	require.False(t, report.HasFailures())
	testutil.RequireContent(t, fs, "/etc/sysctl.d/99-tunectl.conf", "vm.swappiness = 1\n")

	_, err := rollback.New(fs).Rollback([]string{"/etc/sysctl.d", "/etc/security"}, false)
	require.NoError(t, err)

	testutil.RequireContent(t, fs, "/etc/sysctl.d/99-tunectl.conf", "vm.swappiness = 60\n")
	testutil.RequireContent(t, fs, "/etc/security/limits.conf", "# defaults\n")
}
