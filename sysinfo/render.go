// Package sysinfo - Report rendering
package sysinfo

import (
	"fmt"
	"strings"
)

// DefaultPlaceholder is rendered for fields that could not be determined.
const DefaultPlaceholder = "Unknown"

// RenderOptions control how a SystemInfo is rendered.
type RenderOptions struct {
	// NoColor disables ANSI color codes in the rendered lines.
	NoColor bool

	// Placeholder replaces unset fields. Empty means DefaultPlaceholder.
	Placeholder string
}

// Render formats a SystemInfo as a slice of report lines in a fixed field
// order. It performs no I/O, so it can be tested independently of the
// terminal. Every field produces at least one line; unset fields render
// with the placeholder rather than being dropped, so the report shape is
// stable across hosts.
func Render(info *SystemInfo, opts RenderOptions) []string {
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	or := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return placeholder
		}
		return s
	}

	paint := func(text, color string) string {
		if opts.NoColor {
			return text
		}
		return color + text + ColorReset
	}

	label := func(name, value string) string {
		return fmt.Sprintf("%s: %s", paint(name, ColorBlue), value)
	}

	user := or(info.Username)
	host := or(info.Hostname)
	header := fmt.Sprintf("%s@%s", paint(user, ColorCyan), paint(host, ColorCyan))
	separator := strings.Repeat("-", len(user)+len(host)+1)

	lines := []string{
		header,
		separator,
		label("OS", or(strings.TrimSpace(info.OS+" "+info.Arch))),
		label("Host", or(info.Host)),
		label("Kernel", or(info.Kernel)),
	}

	if info.UptimeSeconds > 0 {
		lines = append(lines, label("Uptime", FormatUptime(info.UptimeSeconds)))
	} else {
		lines = append(lines, label("Uptime", placeholder))
	}

	if info.PackageCount > 0 {
		pkgs := fmt.Sprintf("%d", info.PackageCount)
		if info.PackageManager != "" {
			pkgs += fmt.Sprintf(" (%s)", info.PackageManager)
		}
		lines = append(lines, label("Packages", pkgs))
	} else {
		lines = append(lines, label("Packages", placeholder))
	}

	lines = append(lines,
		label("Shell", or(strings.TrimSpace(info.ShellName+" "+info.ShellVersion))),
		label("Display", or(displayString(info))),
		label("DE", or(info.DE)),
		label("WM", or(info.WM)),
		label("Theme", or(info.Theme)),
		label("Font", or(info.Font)),
		label("Terminal", or(info.Terminal)),
		label("CPU", or(cpuString(info))),
	)

	if len(info.GPUs) == 0 {
		lines = append(lines, label("GPU", placeholder))
	}
	for _, gpu := range info.GPUs {
		lines = append(lines, label("GPU", or(gpu)))
	}

	if info.Memory != nil {
		lines = append(lines, label("Memory", FormatUsage(info.Memory.Used, info.Memory.Total)))
	} else {
		lines = append(lines, label("Memory", placeholder))
	}

	if info.Swap != nil {
		lines = append(lines, label("Swap", FormatUsage(info.Swap.Used, info.Swap.Total)))
	} else {
		lines = append(lines, label("Swap", placeholder))
	}

	if len(info.Disks) == 0 {
		lines = append(lines, label("Disk", placeholder))
	}
	for _, d := range info.Disks {
		lines = append(lines, label(fmt.Sprintf("Disk (%s)", d.Mount), FormatUsage(d.Used, d.Total)))
	}

	lines = append(lines, label("Local IP", or(info.LocalIP)))

	if info.Battery != nil {
		bat := fmt.Sprintf("%d%%", info.Battery.Percent)
		if info.Battery.Status != "" {
			bat += fmt.Sprintf(" [%s]", info.Battery.Status)
		}
		lines = append(lines, label("Battery", bat))
	} else {
		lines = append(lines, label("Battery", placeholder))
	}

	lines = append(lines, label("Locale", or(info.Locale)))

	return lines
}

// displayString combines resolution and refresh rate into one value.
func displayString(info *SystemInfo) string {
	if info.Resolution == "" {
		return ""
	}
	if info.RefreshRateHz > 0 {
		return fmt.Sprintf("%s @ %d Hz", info.Resolution, info.RefreshRateHz)
	}
	return info.Resolution
}

// cpuString combines CPU model and core count into one value.
func cpuString(info *SystemInfo) string {
	if info.CPUModel == "" {
		return ""
	}
	if info.CPUCores > 0 {
		return fmt.Sprintf("%s (%d cores)", info.CPUModel, info.CPUCores)
	}
	return info.CPUModel
}
