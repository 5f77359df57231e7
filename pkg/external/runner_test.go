package external_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/perfkit/tunectl/pkg/external"
	"github.com/perfkit/tunectl/pkg/types"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestRunSuccess(t *testing.T) {
	requireShell(t)
	runner := external.NewExecRunner()

	result, err := runner.Run(types.CommandDesc{Program: "sh", Args: []string{"-c", "echo ok"}})

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "ok\n", result.Stdout)
}

func TestRunNonZeroExit(t *testing.T) {
	requireShell(t)
	runner := external.NewExecRunner()

	result, err := runner.Run(types.CommandDesc{Program: "sh", Args: []string{"-c", "echo broken >&2; exit 3"}})

	require.Error(t, err)
	assert.Equal(t, errors.ErrExternalCommand, errors.GetCode(err))
	assert.Equal(t, 3, result.ExitCode)
	assert.Contains(t, result.Stderr, "broken")
	assert.Contains(t, err.Error(), "status 3")
}

func TestRunMissingProgram(t *testing.T) {
	runner := external.NewExecRunner()

	result, err := runner.Run(types.CommandDesc{Program: "tunectl-no-such-program"})

	require.Error(t, err)
	assert.Equal(t, errors.ErrExternalCommand, errors.GetCode(err))
	assert.Equal(t, -1, result.ExitCode)
}

func TestCommandDescriptors(t *testing.T) {
	assert.Equal(t, types.CommandDesc{
		Program: "pacman",
		Args:    []string{"-S", "--needed", "--noconfirm", "tuned"},
	}, external.InstallPackages("tuned"))

	assert.Equal(t, types.CommandDesc{Program: "sysctl", Args: []string{"--system"}}, external.ReloadSysctl())
	assert.Equal(t, types.CommandDesc{Program: "udevadm", Args: []string{"control", "--reload"}}, external.ReloadUdevRules())
	assert.Equal(t, types.CommandDesc{Program: "systemctl", Args: []string{"restart", "tuned"}}, external.RestartService("tuned"))
}
