//go:build darwin
// +build darwin

// Package sysinfo - macOS implementation.
//
// Deliberately a minimal subset: the portable fields come from gopsutil
// and a couple of environment variables. Desktop metadata (DE, WM, theme,
// font, display) is left unset.
package sysinfo

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

func collectHost() (*SystemInfo, error) {
	info := &SystemInfo{}

	info.Username = currentUsername()
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	if h, err := host.Info(); err == nil {
		info.OS = "macOS " + h.PlatformVersion
		info.Kernel = h.KernelVersion
		info.UptimeSeconds = h.Uptime
	}
	info.Arch = runtime.GOARCH

	if model, err := runCommand("sysctl", "-n", "hw.model"); err == nil {
		info.Host = model
	}

	info.CPUCores = runtime.NumCPU()
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}

	if vm, err := mem.VirtualMemory(); err == nil && vm.Total > 0 {
		info.Memory = &MemStat{Used: vm.Used, Total: vm.Total}
	}
	if sm, err := mem.SwapMemory(); err == nil && sm.Total > 0 {
		info.Swap = &MemStat{Used: sm.Used, Total: sm.Total}
	}

	if du, err := disk.Usage("/"); err == nil && du.Total > 0 {
		info.Disks = []DiskEntry{{Mount: "/", Used: du.Used, Total: du.Total}}
	}

	info.ShellName, info.ShellVersion = shellInfo()
	info.Terminal = terminalName()
	info.LocalIP = localIP()
	info.Locale = os.Getenv("LANG")

	return info, nil
}
