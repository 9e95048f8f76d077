//go:build !windows
// +build !windows

package sysinfo

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// commandTimeout bounds every helper process so a stuck tool cannot hang
// the report.
const commandTimeout = 1500 * time.Millisecond

// runCommand executes a helper program with a timeout and returns its
// trimmed stdout. Failures (missing binary, non-zero exit, timeout) come
// back as errors for the caller to degrade on.
func runCommand(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
