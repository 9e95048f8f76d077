// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"time"
)

// FormatBytes converts a byte count to a human-readable string using
// binary units with one decimal of precision.
//
// Example: FormatBytes(1536) returns "1.5 KiB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// FormatUsage renders a used/total byte pair as "used / total (NN%)".
func FormatUsage(used, total uint64) string {
	if total == 0 {
		return fmt.Sprintf("%s / %s", FormatBytes(used), FormatBytes(total))
	}
	pct := int(float64(used) / float64(total) * 100)
	return fmt.Sprintf("%s / %s (%d%%)", FormatBytes(used), FormatBytes(total), pct)
}

// FormatUptime converts an uptime in seconds into a human-readable string
// such as "2 days, 5 hours, 30 mins".
func FormatUptime(seconds uint64) string {
	uptime := time.Duration(seconds) * time.Second
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, plural(days)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d min%s", mins, plural(mins)))
	}

	return strings.Join(parts, ", ")
}

// plural returns "s" if count is not 1, empty string otherwise.
func plural(count int) string {
	if count != 1 {
		return "s"
	}
	return ""
}

// TruncateString truncates a string to a maximum length and adds an
// ellipsis if needed.
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// PadRight pads a string with spaces to reach a minimum width.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
