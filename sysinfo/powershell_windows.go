//go:build windows
// +build windows

package sysinfo

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// commandTimeout bounds every helper process so a stuck query cannot hang
// the report.
const commandTimeout = 1500 * time.Millisecond

// runPowerShell runs a PowerShell command with a timeout and returns raw
// stdout bytes. The command is executed with -NoProfile and a hidden
// window.
func runPowerShell(cmd string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	c := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", cmd)
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	return c.Output()
}

// runPowerShellJSON runs a PowerShell command expected to emit JSON and
// unmarshals it into v. The raw bytes are returned alongside any error.
func runPowerShellJSON(cmd string, v interface{}) ([]byte, error) {
	out, err := runPowerShell(cmd)
	if err != nil {
		return nil, err
	}
	if v != nil {
		_ = json.Unmarshal(out, v)
	}
	return out, nil
}

// powerShellVersion runs the given PowerShell executable ("pwsh" or
// "powershell") to retrieve its version string, or empty on failure.
func powerShellVersion(cmdName string) string {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	c := exec.CommandContext(ctx, cmdName, "-NoProfile", "-Command", "$PSVersionTable.PSVersion.ToString()")
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	out, err := c.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
