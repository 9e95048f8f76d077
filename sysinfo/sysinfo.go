// Package sysinfo provides cross-platform system information retrieval.
// It defines the core data structures for gathering OS, hardware and
// desktop-environment details, with one platform collector per build target.
package sysinfo

// ANSI color codes for terminal output formatting
const (
	ColorReset  = "\033[0m"
	ColorBold   = "\033[1m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// MemStat holds a used/total byte pair for memory-like metrics (RAM, swap).
type MemStat struct {
	Used  uint64
	Total uint64
}

// DiskEntry holds usage for one mounted filesystem.
type DiskEntry struct {
	Mount string
	Used  uint64
	Total uint64
}

// BatteryInfo holds the charge level and state of a battery. A nil
// *BatteryInfo on SystemInfo means no battery was detected.
type BatteryInfo struct {
	Percent int
	Status  string
}

// SystemInfo represents one snapshot of host information. Every field is
// optional: the zero value (empty string, 0, nil) means the metric could
// not be determined on this host, which is expected and never an error.
type SystemInfo struct {
	// Username is the current logged-in user's name
	Username string

	// Hostname is the computer's network name
	Hostname string

	// OS is the operating system name and version (e.g. distro pretty name)
	OS string

	// Arch is the machine architecture (e.g. "x86_64")
	Arch string

	// Host is the hardware vendor and model
	Host string

	// Kernel is the operating system kernel version
	Kernel string

	// UptimeSeconds is the time since boot
	UptimeSeconds uint64

	// PackageCount is the number of installed packages, with
	// PackageManager naming the manager that reported it
	PackageCount   int
	PackageManager string

	// ShellName and ShellVersion describe the login shell
	ShellName    string
	ShellVersion string

	// Resolution is the primary display resolution ("1920x1080");
	// RefreshRateHz is its refresh rate when known
	Resolution    string
	RefreshRateHz int

	// DE and WM are the desktop environment and window manager / session
	DE string
	WM string

	// Theme and Font are the desktop widget theme and interface font
	Theme string
	Font  string

	// Terminal is the terminal emulator in use
	Terminal string

	// CPUModel and CPUCores describe the processor
	CPUModel string
	CPUCores int

	// GPUs lists detected graphics adapters, primary first
	GPUs []string

	// Memory and Swap are RAM and swap usage in bytes
	Memory *MemStat
	Swap   *MemStat

	// Disks lists mounted real filesystems in detection order
	Disks []DiskEntry

	// LocalIP is the primary local IPv4 address
	LocalIP string

	// Battery is the battery charge state, nil when no battery exists
	Battery *BatteryInfo

	// Locale is the configured locale (e.g. "en_US.UTF-8")
	Locale string
}

// GetSystemInfo retrieves a snapshot of host information. Individual field
// queries degrade to the zero value when the metric is unavailable; the
// call as a whole does not fail on missing data.
//
// Platform-specific implementations are in separate files (linux.go,
// windows.go, darwin.go, other.go).
func GetSystemInfo() (*SystemInfo, error) {
	return collectHost()
}
