package testutil

import (
	"strings"

	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/perfkit/tunectl/pkg/external"
	"github.com/perfkit/tunectl/pkg/types"
)

// RecordingRunner implements external.Runner without spawning
// processes. It records every invocation and fails the commands whose
// program names appear in FailPrograms.
type RecordingRunner struct {
	Calls        []types.CommandDesc
	FailPrograms map[string]bool
}

// NewRecordingRunner creates a runner where every command succeeds.
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{FailPrograms: make(map[string]bool)}
}

// FailOn marks a program name as failing with exit status 1.
func (r *RecordingRunner) FailOn(program string) *RecordingRunner {
	r.FailPrograms[program] = true
	return r
}

func (r *RecordingRunner) Run(desc types.CommandDesc) (*external.CommandResult, error) {
	r.Calls = append(r.Calls, desc)
	result := &external.CommandResult{Desc: desc}
	if r.FailPrograms[desc.Program] {
		result.ExitCode = 1
		result.Stderr = "simulated failure"
		return result, errors.Newf(errors.ErrExternalCommand, "%s exited with status 1", desc.Program)
	}
	return result, nil
}

// Ran reports whether a command with the given program name was run.
func (r *RecordingRunner) Ran(program string) bool {
	for _, call := range r.Calls {
		if call.Program == program {
			return true
		}
	}
	return false
}

// CommandLines renders the recorded calls for assertions.
func (r *RecordingRunner) CommandLines() []string {
	lines := make([]string, 0, len(r.Calls))
	for _, call := range r.Calls {
		lines = append(lines, strings.TrimSpace(call.Program+" "+strings.Join(call.Args, " ")))
	}
	return lines
}
