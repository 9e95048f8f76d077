//go:build linux || darwin
// +build linux darwin

// Package sysinfo - helpers shared by the Unix-like collectors.
package sysinfo

import (
	"net"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"
)

func currentUsername() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

// shellInfo returns the login shell's name and version. The version comes
// from running the shell with --version, which bash, zsh and fish all
// support.
func shellInfo() (name, version string) {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return "", ""
	}
	name = filepath.Base(shellPath)

	out, err := runCommand(shellPath, "--version")
	if err != nil {
		return name, ""
	}
	firstLine := strings.SplitN(out, "\n", 2)[0]
	return name, extractVersion(firstLine)
}

// extractVersion pulls the first dotted version number out of a line such
// as "GNU bash, version 5.2.26(1)-release" or "zsh 5.9 (x86_64...)".
func extractVersion(line string) string {
	for _, field := range strings.Fields(line) {
		field = strings.TrimSuffix(field, ",")
		if len(field) == 0 || field[0] < '0' || field[0] > '9' || !strings.Contains(field, ".") {
			continue
		}
		if idx := strings.IndexFunc(field, func(r rune) bool {
			return (r < '0' || r > '9') && r != '.'
		}); idx > 0 {
			field = field[:idx]
		}
		return field
	}
	return ""
}

func terminalName() string {
	if term := os.Getenv("TERM_PROGRAM"); term != "" {
		return term
	}
	return os.Getenv("TERM")
}

// localIP returns the IPv4 address the default route would use. Dialing a
// UDP socket sends no packets; it only asks the kernel for a route.
func localIP() string {
	d := net.Dialer{Timeout: 500 * time.Millisecond}
	if conn, err := d.Dial("udp", "8.8.8.8:53"); err == nil {
		addr, ok := conn.LocalAddr().(*net.UDPAddr)
		_ = conn.Close()
		if ok {
			if ip4 := addr.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
				return ip4.String()
			}
		}
	}

	// Fallback: first non-loopback IPv4 on an up interface.
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}
			if ip4 := ipNet.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
				return ip4.String()
			}
		}
	}
	return ""
}

// readTrimmed reads a small file and trims surrounding whitespace.
// Missing files yield an empty string.
func readTrimmed(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
