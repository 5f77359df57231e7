package types

import (
	"time"

	"github.com/google/uuid"
)

// Session is the immutable context for one apply run, constructed once
// from validated input and passed explicitly to the applier. There is
// deliberately no ambient run state anywhere else.
type Session struct {
	ID        string
	Profile   string
	DryRun    bool
	StartedAt time.Time
}

// NewSession builds a session for the given validated profile name.
func NewSession(profile string, dryRun bool) Session {
	return Session{
		ID:        uuid.NewString(),
		Profile:   profile,
		DryRun:    dryRun,
		StartedAt: time.Now(),
	}
}
