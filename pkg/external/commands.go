package external

import "github.com/perfkit/tunectl/pkg/types"

// Descriptor constructors for the collaborators tunectl talks to.
// Profiles embed these so the catalog stays declarative.

// InstallPackages installs packages via pacman without prompting.
// Already-installed packages are left alone (--needed).
func InstallPackages(pkgs ...string) types.CommandDesc {
	args := append([]string{"-S", "--needed", "--noconfirm"}, pkgs...)
	return types.CommandDesc{Program: "pacman", Args: args}
}

// ReloadSysctl re-reads every sysctl.d fragment.
func ReloadSysctl() types.CommandDesc {
	return types.CommandDesc{Program: "sysctl", Args: []string{"--system"}}
}

// ReloadUdevRules makes udevd re-read its rules files.
func ReloadUdevRules() types.CommandDesc {
	return types.CommandDesc{Program: "udevadm", Args: []string{"control", "--reload"}}
}

// TriggerUdev replays device events so new rules take effect now.
func TriggerUdev() types.CommandDesc {
	return types.CommandDesc{Program: "udevadm", Args: []string{"trigger"}}
}

// RestartService restarts a systemd unit.
func RestartService(unit string) types.CommandDesc {
	return types.CommandDesc{Program: "systemctl", Args: []string{"restart", unit}}
}

// EnableService enables and starts a systemd unit.
func EnableService(unit string) types.CommandDesc {
	return types.CommandDesc{Program: "systemctl", Args: []string{"enable", "--now", unit}}
}
