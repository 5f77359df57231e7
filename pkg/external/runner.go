// Package external invokes the engine's external collaborators: the
// package manager, the service manager and the udev machinery. Every
// invocation is blocking; a non-zero exit becomes a per-action error
// carrying stderr detail, never a panic or a session abort.
package external

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/perfkit/tunectl/pkg/logging"
	"github.com/perfkit/tunectl/pkg/types"
)

// CommandResult captures one finished command invocation.
type CommandResult struct {
	Desc     types.CommandDesc
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes external commands on behalf of the applier.
type Runner interface {
	Run(desc types.CommandDesc) (*CommandResult, error)
}

type execRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(desc types.CommandDesc) (*CommandResult, error) {
	log := logging.GetLogger("external")
	log.Debug().Str("program", desc.Program).Strs("args", desc.Args).Msg("Running command")

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(desc.Program, desc.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &CommandResult{
		Desc:   desc,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err == nil {
		return result, nil
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
		return result, errors.Newf(errors.ErrExternalCommand, "%s exited with status %d: %s",
			commandLine(desc), result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	// Program missing or not executable.
	result.ExitCode = -1
	return result, errors.Wrapf(err, errors.ErrExternalCommand, "running %s", commandLine(desc))
}

func commandLine(desc types.CommandDesc) string {
	if len(desc.Args) == 0 {
		return desc.Program
	}
	return desc.Program + " " + strings.Join(desc.Args, " ")
}
