package types

import "time"

// ActionStatus is the terminal state of one applied action.
// Actions start implicitly pending and end in exactly one of these.
type ActionStatus string

const (
	StatusSuccess ActionStatus = "success"
	StatusSkipped ActionStatus = "skipped"
	StatusFailed  ActionStatus = "failed"
)

// ActionResult records the outcome of a single action. Failures carry
// the error text so the final report can be produced even after the
// error value itself is out of scope.
type ActionResult struct {
	ActionID string       `yaml:"action"`
	Summary  string       `yaml:"summary"`
	Status   ActionStatus `yaml:"status"`

	// Detail explains a skip (e.g. "line already present", "dry run").
	Detail string `yaml:"detail,omitempty"`

	// Error is the failure message when Status is StatusFailed.
	Error string `yaml:"error,omitempty"`
}

// Failed reports whether the action ended in failure.
func (r ActionResult) Failed() bool { return r.Status == StatusFailed }

// SessionReport aggregates the per-action outcomes of one apply run.
// It is always produced, even when some or all actions failed.
type SessionReport struct {
	SessionID  string         `yaml:"session_id"`
	Profile    string         `yaml:"profile"`
	DryRun     bool           `yaml:"dry_run"`
	StartedAt  time.Time      `yaml:"started_at"`
	FinishedAt time.Time      `yaml:"finished_at"`
	Results    []ActionResult `yaml:"results"`
}

// Counts returns the number of succeeded, skipped and failed actions.
func (r *SessionReport) Counts() (success, skipped, failed int) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusSuccess:
			success++
		case StatusSkipped:
			skipped++
		case StatusFailed:
			failed++
		}
	}
	return success, skipped, failed
}

// HasFailures reports whether any action failed.
func (r *SessionReport) HasFailures() bool {
	_, _, failed := r.Counts()
	return failed > 0
}
