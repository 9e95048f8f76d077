//go:build linux
// +build linux

// Package sysinfo - Linux-specific implementation.
//
// Collection reads the usual kernel surfaces (/proc, /sys, /etc/os-release)
// directly and shells out only for data that has no file-based source
// (gsettings, xrandr, lspci, rpm). Every query degrades to an unset field.
package sysinfo

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// pseudoFilesystems are mount types that never represent a physical disk.
var pseudoFilesystems = map[string]bool{
	"autofs":      true,
	"binfmt_misc": true,
	"bpf":         true,
	"cgroup":      true,
	"cgroup2":     true,
	"configfs":    true,
	"debugfs":     true,
	"devpts":      true,
	"devtmpfs":    true,
	"efivarfs":    true,
	"fusectl":     true,
	"hugetlbfs":   true,
	"mqueue":      true,
	"overlay":     true,
	"proc":        true,
	"pstore":      true,
	"ramfs":       true,
	"securityfs":  true,
	"squashfs":    true,
	"sysfs":       true,
	"tmpfs":       true,
	"tracefs":     true,
}

// linuxCollector reads host information from the kernel's file interfaces.
// The directory roots and the statfs function are fields so tests can
// point the collector at fixture trees.
type linuxCollector struct {
	procDir string
	sysDir  string
	etcDir  string
	varDir  string

	statfs func(path string, buf *unix.Statfs_t) error
}

func newLinuxCollector() *linuxCollector {
	return &linuxCollector{
		procDir: "/proc",
		sysDir:  "/sys",
		etcDir:  "/etc",
		varDir:  "/var",
		statfs:  unix.Statfs,
	}
}

// collectHost gathers Linux host information. It never fails as a whole:
// each field query independently succeeds or leaves the field unset.
func collectHost() (*SystemInfo, error) {
	return newLinuxCollector().collect(), nil
}

func (c *linuxCollector) collect() *SystemInfo {
	info := &SystemInfo{}

	info.Username = currentUsername()
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	info.OS = c.osRelease()
	info.Kernel, info.Arch = unameInfo()
	info.UptimeSeconds = c.uptime()
	info.Host = c.hostModel()
	info.CPUModel, info.CPUCores = c.cpu()
	info.Memory, info.Swap = c.memory()
	info.Disks = c.disks()
	info.Battery = c.battery()
	info.PackageCount, info.PackageManager = c.packages()
	info.Resolution, info.RefreshRateHz = c.display()
	info.GPUs = gpuModels()

	info.ShellName, info.ShellVersion = shellInfo()
	info.DE = desktopEnvironment()
	info.WM = sessionType()
	info.Theme = gsetting("gtk-theme")
	info.Font = gsetting("font-name")
	info.Terminal = terminalName()
	info.LocalIP = localIP()
	info.Locale = os.Getenv("LANG")

	return info
}

// osRelease returns the distro's PRETTY_NAME from /etc/os-release.
func (c *linuxCollector) osRelease() string {
	data, err := os.ReadFile(filepath.Join(c.etcDir, "os-release"))
	if err != nil {
		return ""
	}
	kv := parseKeyValues(string(data))
	if pretty := trimQuotes(kv["PRETTY_NAME"]); pretty != "" {
		return pretty
	}
	name := trimQuotes(kv["NAME"])
	version := trimQuotes(kv["VERSION_ID"])
	return strings.TrimSpace(name + " " + version)
}

// unameInfo returns the kernel release and machine architecture.
func unameInfo() (kernel, arch string) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", runtime.GOARCH
	}
	kernel = unix.ByteSliceToString(u.Release[:])
	arch = unix.ByteSliceToString(u.Machine[:])
	if arch == "" {
		arch = runtime.GOARCH
	}
	return kernel, arch
}

// uptime reads seconds-since-boot from /proc/uptime.
func (c *linuxCollector) uptime() uint64 {
	data, err := os.ReadFile(filepath.Join(c.procDir, "uptime"))
	if err != nil {
		return 0
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || seconds < 0 {
		return 0
	}
	return uint64(seconds)
}

// hostModel reads the DMI product strings exposed under /sys.
func (c *linuxCollector) hostModel() string {
	dmiDir := filepath.Join(c.sysDir, "devices", "virtual", "dmi", "id")
	vendor := readTrimmed(filepath.Join(dmiDir, "sys_vendor"))
	product := readTrimmed(filepath.Join(dmiDir, "product_name"))
	if model := strings.TrimSpace(vendor + " " + product); model != "" {
		return model
	}
	// ARM boards expose a devicetree model instead of DMI.
	model := readTrimmed(filepath.Join(c.sysDir, "firmware", "devicetree", "base", "model"))
	return strings.TrimRight(model, "\x00")
}

// cpu returns the processor model name from /proc/cpuinfo and the logical
// core count.
func (c *linuxCollector) cpu() (model string, cores int) {
	f, err := os.Open(filepath.Join(c.procDir, "cpuinfo"))
	if err != nil {
		return "", runtime.NumCPU()
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		// "model name" on x86, "Hardware" on older ARM kernels.
		if strings.HasPrefix(line, "model name") || strings.HasPrefix(line, "Hardware") {
			if parts := strings.SplitN(line, ":", 2); len(parts) == 2 {
				model = strings.TrimSpace(parts[1])
				break
			}
		}
	}
	return model, runtime.NumCPU()
}

// memory parses /proc/meminfo into RAM and swap usage. Swap is nil when
// the host has no swap configured.
func (c *linuxCollector) memory() (ram, swap *MemStat) {
	data, err := os.ReadFile(filepath.Join(c.procDir, "meminfo"))
	if err != nil {
		return nil, nil
	}

	kb := map[string]uint64{}
	for _, line := range strings.Split(string(data), "\n") {
		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		if v, err := strconv.ParseUint(fields[0], 10, 64); err == nil {
			kb[strings.TrimSpace(key)] = v * 1024
		}
	}

	total := kb["MemTotal"]
	available, ok := kb["MemAvailable"]
	if !ok {
		// Pre-3.14 kernels: approximate with free + buffers + cache.
		available = kb["MemFree"] + kb["Buffers"] + kb["Cached"]
	}
	if total > 0 && available <= total {
		ram = &MemStat{Used: total - available, Total: total}
	}

	swapTotal := kb["SwapTotal"]
	swapFree := kb["SwapFree"]
	if swapTotal > 0 && swapFree <= swapTotal {
		swap = &MemStat{Used: swapTotal - swapFree, Total: swapTotal}
	}
	return ram, swap
}

// disks returns usage for each mounted real filesystem in /proc/mounts
// order, one entry per underlying device.
func (c *linuxCollector) disks() []DiskEntry {
	mounts := c.parseMounts()
	var entries []DiskEntry
	for _, m := range mounts {
		var fs unix.Statfs_t
		if err := c.statfs(m.mountPoint, &fs); err != nil {
			debugf("statfs %s: %v", m.mountPoint, err)
			continue
		}
		bsize := uint64(fs.Bsize)
		total := fs.Blocks * bsize
		if total == 0 {
			continue
		}
		used := (fs.Blocks - fs.Bfree) * bsize
		entries = append(entries, DiskEntry{Mount: m.mountPoint, Used: used, Total: total})
	}
	return entries
}

type mountPoint struct {
	device     string
	mountPoint string
	fsType     string
}

// parseMounts reads /proc/mounts and keeps device-backed filesystems,
// first mount per device, in file order.
func (c *linuxCollector) parseMounts() []mountPoint {
	f, err := os.Open(filepath.Join(c.procDir, "mounts"))
	if err != nil {
		return nil
	}
	defer f.Close()

	seen := map[string]bool{}
	var mounts []mountPoint
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 {
			continue
		}
		device, mount, fsType := fields[0], fields[1], fields[2]
		if !strings.HasPrefix(device, "/dev/") || pseudoFilesystems[fsType] {
			continue
		}
		if strings.HasPrefix(device, "/dev/loop") || strings.HasPrefix(device, "/dev/ram") {
			continue
		}
		if seen[device] {
			continue
		}
		seen[device] = true
		mounts = append(mounts, mountPoint{
			device:     device,
			mountPoint: unescapeMount(mount),
			fsType:     fsType,
		})
	}
	return mounts
}

// unescapeMount decodes the octal escapes /proc/mounts uses for spaces
// and other special characters.
func unescapeMount(s string) string {
	replacer := strings.NewReplacer(`\040`, " ", `\011`, "\t", `\012`, "\n", `\134`, `\`)
	return replacer.Replace(s)
}

// battery reads the first battery under /sys/class/power_supply. Returns
// nil when the host has none.
func (c *linuxCollector) battery() *BatteryInfo {
	supplyDir := filepath.Join(c.sysDir, "class", "power_supply")
	dirs, err := os.ReadDir(supplyDir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, d.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		dir := filepath.Join(supplyDir, name)
		if readTrimmed(filepath.Join(dir, "type")) != "Battery" {
			continue
		}
		capStr := readTrimmed(filepath.Join(dir, "capacity"))
		percent, err := strconv.Atoi(capStr)
		if err != nil || percent < 0 || percent > 100 {
			continue
		}
		return &BatteryInfo{
			Percent: percent,
			Status:  readTrimmed(filepath.Join(dir, "status")),
		}
	}
	return nil
}

// packages counts installed packages via the first manager that answers:
// the pacman local db, the dpkg status file, then rpm.
func (c *linuxCollector) packages() (int, string) {
	if entries, err := os.ReadDir(filepath.Join(c.varDir, "lib", "pacman", "local")); err == nil {
		count := 0
		for _, e := range entries {
			if e.IsDir() {
				count++
			}
		}
		if count > 0 {
			return count, "pacman"
		}
	}

	if data, err := os.ReadFile(filepath.Join(c.varDir, "lib", "dpkg", "status")); err == nil {
		count := 0
		for _, line := range strings.Split(string(data), "\n") {
			if strings.HasPrefix(line, "Status:") && strings.HasSuffix(strings.TrimSpace(line), " installed") {
				count++
			}
		}
		if count > 0 {
			return count, "dpkg"
		}
	}

	if out, err := runCommand("rpm", "-qa"); err == nil {
		count := 0
		for _, line := range strings.Split(out, "\n") {
			if strings.TrimSpace(line) != "" {
				count++
			}
		}
		if count > 0 {
			return count, "rpm"
		}
	}

	return 0, ""
}

// display returns the primary display resolution and refresh rate.
// xrandr is tried first because it reports the active refresh rate; the
// DRM mode list is the file-based fallback.
func (c *linuxCollector) display() (string, int) {
	if res, hz := xrandrDisplay(); res != "" {
		return res, hz
	}

	pattern := filepath.Join(c.sysDir, "class", "drm", "card*", "modes")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", 0
	}
	sort.Strings(matches)
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if mode := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0]); mode != "" {
			return mode, 0
		}
	}
	return "", 0
}

// xrandrDisplay parses the current mode out of xrandr output. The active
// mode's rate is marked with "*", e.g. "1920x1080 59.96*+".
func xrandrDisplay() (string, int) {
	out, err := runCommand("xrandr", "--current")
	if err != nil {
		return "", 0
	}
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.Contains(fields[0], "x") {
			continue
		}
		resolution := fields[0]
		for _, f := range fields[1:] {
			if !strings.Contains(f, "*") {
				continue
			}
			rate, err := strconv.ParseFloat(strings.Trim(f, "*+"), 64)
			if err == nil {
				return resolution, int(rate + 0.5)
			}
		}
		return resolution, 0
	}
	return "", 0
}

// gpuModels lists graphics adapters from lspci output.
func gpuModels() []string {
	out, err := runCommand("lspci")
	if err != nil {
		return nil
	}
	var gpus []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "VGA compatible controller") &&
			!strings.Contains(line, "3D controller") &&
			!strings.Contains(line, "Display controller") {
			continue
		}
		if _, model, ok := strings.Cut(line, ": "); ok {
			gpus = append(gpus, strings.TrimSpace(model))
		}
	}
	return gpus
}

func desktopEnvironment() string {
	if de := os.Getenv("XDG_CURRENT_DESKTOP"); de != "" {
		return de
	}
	return os.Getenv("DESKTOP_SESSION")
}

func sessionType() string {
	return os.Getenv("XDG_SESSION_TYPE")
}

// gsetting reads a GNOME interface setting (theme, font). Returns empty
// when gsettings is unavailable or the schema is missing.
func gsetting(key string) string {
	out, err := runCommand("gsettings", "get", "org.gnome.desktop.interface", key)
	if err != nil {
		return ""
	}
	return trimQuotes(strings.TrimSpace(out))
}

// parseKeyValues parses KEY=value lines (the /etc/os-release format).
func parseKeyValues(content string) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// trimQuotes strips one pair of surrounding single or double quotes.
func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
