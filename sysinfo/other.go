//go:build !linux && !windows && !darwin
// +build !linux,!windows,!darwin

package sysinfo

import (
	"os"
	"runtime"
)

// collectHost is the fallback for untargeted platforms: only the fields
// the Go runtime can answer are filled.
func collectHost() (*SystemInfo, error) {
	info := &SystemInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}
	if name := os.Getenv("USER"); name != "" {
		info.Username = name
	}
	info.Locale = os.Getenv("LANG")
	return info, nil
}
