// Package paths centralizes the filesystem locations tunectl manages
// and the state directories it writes to.
package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Directories whose files tunectl may mutate. Rollback scans these.
const (
	SysctlDir      = "/etc/sysctl.d"
	UdevRulesDir   = "/etc/udev/rules.d"
	ModprobeDir    = "/etc/modprobe.d"
	ModulesLoadDir = "/etc/modules-load.d"
	SecurityDir    = "/etc/security"
)

// ConfigFile is the optional tool configuration location.
const ConfigFile = "/etc/tunectl/config.toml"

// DefaultSearchRoots returns the directories scanned for snapshots.
func DefaultSearchRoots() []string {
	return []string{SysctlDir, UdevRulesDir, ModprobeDir, ModulesLoadDir, SecurityDir}
}

// StateDir returns the per-user state directory for reports and logs.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "tunectl")
}

// ReportDir returns where session reports are exported.
func ReportDir() string {
	return filepath.Join(StateDir(), "reports")
}
