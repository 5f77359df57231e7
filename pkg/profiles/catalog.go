// Package profiles holds the tuning profile catalog. Profiles are
// declarative: each is an ordered list of actions over a fixed set of
// config files plus the external reloads that make them take effect.
// The catalog is built once and never mutated.
package profiles

import (
	"path/filepath"

	"github.com/perfkit/tunectl/pkg/external"
	"github.com/perfkit/tunectl/pkg/paths"
	"github.com/perfkit/tunectl/pkg/types"
)

const (
	sysctlFile      = "99-tunectl.conf"
	governorRule    = "60-tunectl-cpufreq.rules"
	gpuRule         = "61-tunectl-amdgpu.rules"
	watchdogConf    = "99-tunectl-watchdog.conf"
	amdgpuConf      = "99-tunectl-amdgpu.conf"
	modulesLoadFile = "tunectl.conf"
	limitsConfFile  = "limits.conf"
)

const balancedSysctl = `# Managed by tunectl. Re-run "tunectl apply" after editing.
vm.swappiness = 10
vm.vfs_cache_pressure = 75
kernel.nmi_watchdog = 0
net.core.default_qdisc = fq
net.ipv4.tcp_congestion_control = bbr
`

const aggressiveSysctl = `# Managed by tunectl. Re-run "tunectl apply" after editing.
vm.swappiness = 1
vm.dirty_ratio = 40
vm.dirty_background_ratio = 10
vm.vfs_cache_pressure = 50
kernel.nmi_watchdog = 0
kernel.sched_autogroup_enabled = 0
net.core.default_qdisc = fq
net.ipv4.tcp_congestion_control = bbr
net.core.netdev_max_backlog = 16384
`

const schedutilGovernorRule = `ACTION=="add", SUBSYSTEM=="cpu", KERNEL=="cpu[0-9]*", ATTR{cpufreq/scaling_governor}="schedutil"
`

const performanceGovernorRule = `ACTION=="add", SUBSYSTEM=="cpu", KERNEL=="cpu[0-9]*", ATTR{cpufreq/scaling_governor}="performance"
`

const amdgpuPerfRule = `ACTION=="add", SUBSYSTEM=="drm", KERNEL=="card[0-9]*", ATTR{device/power_dpm_force_performance_level}="high"
`

const watchdogBlacklist = `blacklist sp5100_tco
blacklist iTCO_wdt
`

const amdgpuOptions = `options amdgpu ppfeaturemask=0xffffffff
`

// Catalog returns the selectable profiles in menu order.
func Catalog() []*types.Profile {
	return []*types.Profile{balanced(), aggressive()}
}

func balanced() *types.Profile {
	return &types.Profile{
		Name:        "Balanced",
		Ordinal:     1,
		Description: "Moderate vm/net sysctls, schedutil governor, watchdog off",
		Actions: append([]types.Action{
			types.WriteFile("sysctl-base", "Write base sysctl tuning",
				filepath.Join(paths.SysctlDir, sysctlFile), balancedSysctl),
			types.WriteFile("governor-rule", "Set cpufreq governor to schedutil",
				filepath.Join(paths.UdevRulesDir, governorRule), schedutilGovernorRule),
			types.WriteFile("watchdog-blacklist", "Blacklist hardware watchdog modules",
				filepath.Join(paths.ModprobeDir, watchdogConf), watchdogBlacklist),
			types.AppendLine("msr-autoload", "Autoload the msr module",
				filepath.Join(paths.ModulesLoadDir, modulesLoadFile), "msr"),
		}, tail()...),
	}
}

func aggressive() *types.Profile {
	return &types.Profile{
		Name:        "Aggressive",
		Ordinal:     2,
		Description: "Strong sysctls, performance governor, amdgpu at full power",
		Actions: append([]types.Action{
			types.WriteFile("sysctl-base", "Write aggressive sysctl tuning",
				filepath.Join(paths.SysctlDir, sysctlFile), aggressiveSysctl),
			types.WriteFile("governor-rule", "Set cpufreq governor to performance",
				filepath.Join(paths.UdevRulesDir, governorRule), performanceGovernorRule),
			types.WriteFile("amdgpu-perf-rule", "Force amdgpu high performance level",
				filepath.Join(paths.UdevRulesDir, gpuRule), amdgpuPerfRule),
			types.WriteFile("amdgpu-options", "Unlock amdgpu feature mask",
				filepath.Join(paths.ModprobeDir, amdgpuConf), amdgpuOptions),
			types.WriteFile("watchdog-blacklist", "Blacklist hardware watchdog modules",
				filepath.Join(paths.ModprobeDir, watchdogConf), watchdogBlacklist),
			types.AppendLine("msr-autoload", "Autoload the msr module",
				filepath.Join(paths.ModulesLoadDir, modulesLoadFile), "msr"),
			types.AppendLine("nofile-soft", "Raise soft open-file limit",
				filepath.Join(paths.SecurityDir, limitsConfFile), "* soft nofile 1048576"),
			types.AppendLine("nofile-hard", "Raise hard open-file limit",
				filepath.Join(paths.SecurityDir, limitsConfFile), "* hard nofile 1048576"),
		}, tail()...),
	}
}

// tail is the shared end of every profile: package installation and
// the reloads that make the written files take effect. These run last
// so they pick up everything the earlier actions wrote.
func tail() []types.Action {
	return []types.Action{
		{ID: "install-tuned", Summary: "Install the tuned daemon",
			Kind: types.ActionRunCommand, Command: external.InstallPackages("tuned")},
		{ID: "tuned-enable", Summary: "Enable and start tuned",
			Kind: types.ActionRunCommand, Command: external.EnableService("tuned")},
		{ID: "sysctl-reload", Summary: "Reload sysctl settings",
			Kind: types.ActionRunCommand, Command: external.ReloadSysctl()},
		{ID: "udev-reload", Summary: "Reload udev rules",
			Kind: types.ActionRunCommand, Command: external.ReloadUdevRules()},
		{ID: "udev-trigger", Summary: "Trigger udev events",
			Kind: types.ActionRunCommand, Command: external.TriggerUdev()},
	}
}
