// Package apply walks a profile and executes its actions in declared
// order, collecting a per-action result for the session report. One
// failing action never halts the profile: each action is independent
// and reversible per-file, so partial application is safer than
// all-or-nothing.
package apply

import (
	"time"

	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/perfkit/tunectl/pkg/external"
	"github.com/perfkit/tunectl/pkg/fileops"
	"github.com/perfkit/tunectl/pkg/logging"
	"github.com/perfkit/tunectl/pkg/snapshot"
	"github.com/perfkit/tunectl/pkg/types"
)

// Applier dispatches profile actions to the file mutation primitives
// and the external command runner.
type Applier struct {
	writer   *fileops.Writer
	appender *fileops.Appender
	runner   external.Runner
}

// New wires an applier over the given filesystem and runner. The
// snapshot store is shared between writer and appender so every
// mutation lands in the same rollback scope.
func New(filesystem types.FS, runner external.Runner) *Applier {
	store := snapshot.NewStore(filesystem)
	return &Applier{
		writer:   fileops.NewWriter(filesystem, store),
		appender: fileops.NewAppender(filesystem, store),
		runner:   runner,
	}
}

// Apply executes every action of the profile in order and always
// returns a complete report, even when actions failed. Dry runs record
// every action as skipped and touch nothing.
func (a *Applier) Apply(session types.Session, profile *types.Profile) *types.SessionReport {
	log := logging.GetLogger("apply")
	defer logging.LogOperationStart(log, "apply "+profile.Name)()

	report := &types.SessionReport{
		SessionID: session.ID,
		Profile:   profile.Name,
		DryRun:    session.DryRun,
		StartedAt: session.StartedAt,
	}

	for _, action := range profile.Actions {
		result := types.ActionResult{ActionID: action.ID, Summary: action.Summary}

		if session.DryRun {
			result.Status = types.StatusSkipped
			result.Detail = "dry run"
			report.Results = append(report.Results, result)
			continue
		}

		status, err := a.run(action)
		result.Status = status
		if err != nil {
			result.Error = err.Error()
			log.Error().Err(err).Str("action", action.ID).Msg("Action failed")
		} else if status == types.StatusSkipped {
			result.Detail = "already applied"
		}
		report.Results = append(report.Results, result)
	}

	report.FinishedAt = time.Now()
	success, skipped, failed := report.Counts()
	log.Info().
		Str("session", session.ID).
		Str("profile", profile.Name).
		Int("success", success).
		Int("skipped", skipped).
		Int("failed", failed).
		Msg("Profile applied")
	return report
}

func (a *Applier) run(action types.Action) (types.ActionStatus, error) {
	switch action.Kind {
	case types.ActionWriteFile:
		if _, err := a.writer.Write(action.Path, action.Content); err != nil {
			return types.StatusFailed, err
		}
		return types.StatusSuccess, nil
	case types.ActionAppendLine:
		return a.appender.AppendIfAbsent(action.Path, action.Line)
	case types.ActionRunCommand:
		if _, err := a.runner.Run(action.Command); err != nil {
			return types.StatusFailed, err
		}
		return types.StatusSuccess, nil
	default:
		return types.StatusFailed, errors.Newf(errors.ErrInternal, "unknown action kind %q", action.Kind)
	}
}
