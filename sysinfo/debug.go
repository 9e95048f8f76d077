package sysinfo

import (
	"fmt"
	"os"
)

// debugf writes a diagnostic line to stderr when GOFETCH_DEBUG is set.
// Diagnostics are best-effort and never affect collection results.
func debugf(format string, args ...interface{}) {
	if os.Getenv("GOFETCH_DEBUG") == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "gofetch debug: "+format+"\n", args...)
}
