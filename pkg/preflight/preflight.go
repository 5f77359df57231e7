// Package preflight holds the checks that must pass before any action
// runs. Pre-flight failures are fatal: the session halts with zero
// mutations performed.
package preflight

import (
	"os"

	"github.com/perfkit/tunectl/pkg/errors"
)

// Check verifies the process environment before a mutating run.
type Check struct {
	euid func() int
}

// New returns a check backed by the real process credentials.
func New() *Check {
	return &Check{euid: os.Geteuid}
}

// NewWithEUID returns a check with an injected effective uid, for
// tests.
func NewWithEUID(euid func() int) *Check {
	return &Check{euid: euid}
}

// RequireRoot fails with a specific insufficient-privilege error when
// the process is not running as root, so the user gets a clear message
// instead of an opaque permission failure on the first write.
func (c *Check) RequireRoot() error {
	if c.euid() != 0 {
		return errors.New(errors.ErrInsufficientPrivilege, "tunectl must run as root to modify system configuration (try sudo)")
	}
	return nil
}
