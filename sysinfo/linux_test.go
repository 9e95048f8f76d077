//go:build linux
// +build linux

package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

// testCollector returns a collector rooted at a temp dir so nothing on
// the real host leaks into assertions.
func testCollector(t *testing.T) (*linuxCollector, string) {
	t.Helper()
	dir := t.TempDir()
	c := &linuxCollector{
		procDir: filepath.Join(dir, "proc"),
		sysDir:  filepath.Join(dir, "sys"),
		etcDir:  filepath.Join(dir, "etc"),
		varDir:  filepath.Join(dir, "var"),
		statfs:  unix.Statfs,
	}
	for _, d := range []string{c.procDir, c.sysDir, c.etcDir, c.varDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	return c, dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// Collection against an empty root must not fail or panic; every field
// simply stays unset.
func TestCollectEmptyRoot(t *testing.T) {
	c, _ := testCollector(t)
	info := c.collect()

	if info == nil {
		t.Fatal("collect returned nil")
	}
	if info.OS != "" {
		t.Errorf("OS = %q, want unset", info.OS)
	}
	if info.UptimeSeconds != 0 {
		t.Errorf("UptimeSeconds = %d, want 0", info.UptimeSeconds)
	}
	if info.Memory != nil || info.Swap != nil {
		t.Error("memory/swap set despite missing meminfo")
	}
	if info.Disks != nil {
		t.Errorf("Disks = %v, want nil", info.Disks)
	}
	if info.Battery != nil {
		t.Errorf("Battery = %v, want nil", info.Battery)
	}
}

func TestOSRelease(t *testing.T) {
	c, _ := testCollector(t)
	writeFile(t, filepath.Join(c.etcDir, "os-release"), `NAME="Debian GNU/Linux"
VERSION_ID="12"
PRETTY_NAME="Debian GNU/Linux 12 (bookworm)"
ID=debian
`)
	if got := c.osRelease(); got != "Debian GNU/Linux 12 (bookworm)" {
		t.Fatalf("osRelease = %q", got)
	}
}

func TestOSReleaseWithoutPrettyName(t *testing.T) {
	c, _ := testCollector(t)
	writeFile(t, filepath.Join(c.etcDir, "os-release"), `NAME="Alpine Linux"
VERSION_ID=3.19
`)
	if got := c.osRelease(); got != "Alpine Linux 3.19" {
		t.Fatalf("osRelease = %q", got)
	}
}

func TestUptime(t *testing.T) {
	c, _ := testCollector(t)
	writeFile(t, filepath.Join(c.procDir, "uptime"), "93784.62 181243.11\n")
	if got := c.uptime(); got != 93784 {
		t.Fatalf("uptime = %d, want 93784", got)
	}
}

func TestUptimeGarbage(t *testing.T) {
	c, _ := testCollector(t)
	writeFile(t, filepath.Join(c.procDir, "uptime"), "not-a-number\n")
	if got := c.uptime(); got != 0 {
		t.Fatalf("uptime = %d, want 0 for garbage input", got)
	}
}

func TestMemoryFromMeminfo(t *testing.T) {
	c, _ := testCollector(t)
	writeFile(t, filepath.Join(c.procDir, "meminfo"), `MemTotal:       16384000 kB
MemFree:         2048000 kB
MemAvailable:    8192000 kB
Buffers:          512000 kB
Cached:          4096000 kB
SwapTotal:       4194304 kB
SwapFree:        4194304 kB
`)
	ram, swap := c.memory()
	if ram == nil {
		t.Fatal("ram is nil")
	}
	if ram.Total != 16384000*1024 {
		t.Errorf("ram.Total = %d", ram.Total)
	}
	if ram.Used != (16384000-8192000)*1024 {
		t.Errorf("ram.Used = %d", ram.Used)
	}
	if swap == nil {
		t.Fatal("swap is nil")
	}
	if swap.Total != 4194304*1024 || swap.Used != 0 {
		t.Errorf("swap = %+v", swap)
	}
}

func TestMemoryNoSwap(t *testing.T) {
	c, _ := testCollector(t)
	writeFile(t, filepath.Join(c.procDir, "meminfo"), `MemTotal:       8192000 kB
MemAvailable:   4096000 kB
SwapTotal:             0 kB
SwapFree:              0 kB
`)
	ram, swap := c.memory()
	if ram == nil {
		t.Fatal("ram is nil")
	}
	if swap != nil {
		t.Errorf("swap = %+v, want nil when SwapTotal is 0", swap)
	}
}

func TestCPUFromCpuinfo(t *testing.T) {
	c, _ := testCollector(t)
	writeFile(t, filepath.Join(c.procDir, "cpuinfo"), `processor	: 0
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i7-1260P
cpu MHz		: 2100.000

processor	: 1
model name	: Intel(R) Core(TM) i7-1260P
`)
	model, cores := c.cpu()
	if model != "Intel(R) Core(TM) i7-1260P" {
		t.Errorf("model = %q", model)
	}
	if cores < 1 {
		t.Errorf("cores = %d", cores)
	}
}

func TestParseMounts(t *testing.T) {
	c, _ := testCollector(t)
	writeFile(t, filepath.Join(c.procDir, "mounts"), `proc /proc proc rw 0 0
/dev/nvme0n1p2 / ext4 rw,relatime 0 0
tmpfs /tmp tmpfs rw 0 0
/dev/nvme0n1p2 /var/lib ext4 rw 0 0
/dev/sda1 /home ext4 rw 0 0
/dev/loop3 /snap/core squashfs ro 0 0
/dev/sdb1 /mnt/backup\040drive ext4 rw 0 0
sysfs /sys sysfs rw 0 0
`)
	mounts := c.parseMounts()
	want := []string{"/", "/home", "/mnt/backup drive"}
	if len(mounts) != len(want) {
		t.Fatalf("got %d mounts %v, want %d", len(mounts), mounts, len(want))
	}
	for i, m := range mounts {
		if m.mountPoint != want[i] {
			t.Errorf("mount %d = %q, want %q", i, m.mountPoint, want[i])
		}
	}
}

// Three mounted filesystems produce exactly three disk entries in
// detection order.
func TestDisksThreeMounts(t *testing.T) {
	c, _ := testCollector(t)
	writeFile(t, filepath.Join(c.procDir, "mounts"), `/dev/sda1 / ext4 rw 0 0
/dev/sda2 /home ext4 rw 0 0
/dev/sdb1 /data xfs rw 0 0
`)
	c.statfs = func(path string, buf *unix.Statfs_t) error {
		buf.Bsize = 4096
		buf.Blocks = 1000000
		buf.Bfree = 400000
		return nil
	}

	disks := c.disks()
	if len(disks) != 3 {
		t.Fatalf("got %d disks, want 3", len(disks))
	}
	wantMounts := []string{"/", "/home", "/data"}
	for i, d := range disks {
		if d.Mount != wantMounts[i] {
			t.Errorf("disk %d mount = %q, want %q", i, d.Mount, wantMounts[i])
		}
		if d.Total != 4096*1000000 {
			t.Errorf("disk %d total = %d", i, d.Total)
		}
		if d.Used != 4096*600000 {
			t.Errorf("disk %d used = %d", i, d.Used)
		}
	}
}

func TestBattery(t *testing.T) {
	c, _ := testCollector(t)
	batDir := filepath.Join(c.sysDir, "class", "power_supply", "BAT0")
	writeFile(t, filepath.Join(batDir, "type"), "Battery\n")
	writeFile(t, filepath.Join(batDir, "capacity"), "87\n")
	writeFile(t, filepath.Join(batDir, "status"), "Charging\n")
	// AC adapters must be skipped.
	acDir := filepath.Join(c.sysDir, "class", "power_supply", "AC")
	writeFile(t, filepath.Join(acDir, "type"), "Mains\n")

	bat := c.battery()
	if bat == nil {
		t.Fatal("battery is nil")
	}
	if bat.Percent != 87 || bat.Status != "Charging" {
		t.Fatalf("battery = %+v", bat)
	}
}

func TestBatteryAbsent(t *testing.T) {
	c, _ := testCollector(t)
	if bat := c.battery(); bat != nil {
		t.Fatalf("battery = %+v, want nil with no power_supply dir", bat)
	}
}

func TestHostModelDMI(t *testing.T) {
	c, _ := testCollector(t)
	dmiDir := filepath.Join(c.sysDir, "devices", "virtual", "dmi", "id")
	writeFile(t, filepath.Join(dmiDir, "sys_vendor"), "LENOVO\n")
	writeFile(t, filepath.Join(dmiDir, "product_name"), "21CB000QUS\n")
	if got := c.hostModel(); got != "LENOVO 21CB000QUS" {
		t.Fatalf("hostModel = %q", got)
	}
}

func TestPackagesDpkg(t *testing.T) {
	c, _ := testCollector(t)
	writeFile(t, filepath.Join(c.varDir, "lib", "dpkg", "status"), `Package: bash
Status: install ok installed
Version: 5.2.15

Package: removed-tool
Status: deinstall ok config-files
Version: 1.0

Package: coreutils
Status: install ok installed
Version: 9.1
`)
	count, manager := c.packages()
	if count != 2 || manager != "dpkg" {
		t.Fatalf("packages = %d (%s), want 2 (dpkg)", count, manager)
	}
}

func TestPackagesPacman(t *testing.T) {
	c, _ := testCollector(t)
	local := filepath.Join(c.varDir, "lib", "pacman", "local")
	for _, pkg := range []string{"bash-5.2.026-2", "coreutils-9.4-2", "linux-6.7.4"} {
		if err := os.MkdirAll(filepath.Join(local, pkg), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	count, manager := c.packages()
	if count != 3 || manager != "pacman" {
		t.Fatalf("packages = %d (%s), want 3 (pacman)", count, manager)
	}
}

func TestParseKeyValues(t *testing.T) {
	kv := parseKeyValues("# comment\nA=1\nB=\"two\"\n\nbroken line\nC='three'\n")
	if kv["A"] != "1" || trimQuotes(kv["B"]) != "two" || trimQuotes(kv["C"]) != "three" {
		t.Fatalf("parseKeyValues = %v", kv)
	}
	if _, ok := kv["broken line"]; ok {
		t.Error("line without '=' should be skipped")
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GNU bash, version 5.2.26(1)-release (x86_64-pc-linux-gnu)", "5.2.26"},
		{"zsh 5.9 (x86_64-debian-linux-gnu)", "5.9"},
		{"fish, version 3.7.0", "3.7.0"},
		{"no digits here", ""},
	}
	for _, tc := range tests {
		if got := extractVersion(tc.in); got != tc.want {
			t.Errorf("extractVersion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUnescapeMount(t *testing.T) {
	if got := unescapeMount(`/mnt/with\040space`); got != "/mnt/with space" {
		t.Fatalf("unescapeMount = %q", got)
	}
}
