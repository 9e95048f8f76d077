//go:build windows
// +build windows

// Package sysinfo - Windows-specific implementation
package sysinfo

import (
	"encoding/binary"
	"fmt"
	"net"
	"os"
	"runtime"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modiphlpapi = windows.NewLazySystemDLL("iphlpapi.dll")

	procGetTickCount64           = modkernel32.NewProc("GetTickCount64")
	procGlobalMemoryStatusEx     = modkernel32.NewProc("GlobalMemoryStatusEx")
	procGetSystemPowerStatus     = modkernel32.NewProc("GetSystemPowerStatus")
	procGetLogicalDrives         = modkernel32.NewProc("GetLogicalDrives")
	procGetDriveTypeW            = modkernel32.NewProc("GetDriveTypeW")
	procGetUserDefaultLocaleName = modkernel32.NewProc("GetUserDefaultLocaleName")
	procCreateToolhelp32Snapshot = modkernel32.NewProc("CreateToolhelp32Snapshot")
	procProcess32FirstW          = modkernel32.NewProc("Process32FirstW")
	procProcess32NextW           = modkernel32.NewProc("Process32NextW")
	procGetSystemMetrics         = moduser32.NewProc("GetSystemMetrics")
	procGetBestInterface         = modiphlpapi.NewProc("GetBestInterface")
	procRtlGetVersion            = windows.NewLazySystemDLL("ntdll.dll").NewProc("RtlGetVersion")
)

// memoryStatusEx mirrors the Windows MEMORYSTATUSEX structure.
type memoryStatusEx struct {
	dwLength                uint32
	dwMemoryLoad            uint32
	ullTotalPhys            uint64
	ullAvailPhys            uint64
	ullTotalPageFile        uint64
	ullAvailPageFile        uint64
	ullTotalVirtual         uint64
	ullAvailVirtual         uint64
	ullAvailExtendedVirtual uint64
}

// systemPowerStatus mirrors the Windows SYSTEM_POWER_STATUS structure.
type systemPowerStatus struct {
	acLineStatus        byte
	batteryFlag         byte
	batteryLifePercent  byte
	systemStatusFlag    byte
	batteryLifeTime     uint32
	batteryFullLifeTime uint32
}

// collectHost gathers Windows host information. Field queries run
// sequentially; each degrades to the zero value on failure.
func collectHost() (*SystemInfo, error) {
	info := &SystemInfo{}

	info.Username = os.Getenv("USERNAME")
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	info.OS = windowsVersion()
	info.Arch = windowsArch()
	info.Kernel = windowsKernelVersion()
	info.UptimeSeconds = windowsUptime()

	// One combined CIM query covers the fields that would otherwise each
	// spawn a PowerShell process.
	psCmd := " $cs=Get-CimInstance Win32_ComputerSystem | Select-Object -First 1 -Property Manufacturer,Model; $proc=Get-CimInstance Win32_Processor | Select-Object -First 1 -Property Name,NumberOfCores; $vg=Get-CimInstance Win32_VideoController | Where-Object {$_.Name} | Select-Object -Property Name,CurrentRefreshRate; @{ComputerSystem=$cs; Processor=$proc; VideoControllers=@($vg)} | ConvertTo-Json -Compress"

	var combined struct {
		ComputerSystem struct {
			Manufacturer string
			Model        string
		}
		Processor struct {
			Name          string
			NumberOfCores int
		}
		VideoControllers []struct {
			Name               string
			CurrentRefreshRate int
		}
	}
	if _, err := runPowerShellJSON(psCmd, &combined); err == nil {
		info.Host = strings.TrimSpace(combined.ComputerSystem.Manufacturer + " " + combined.ComputerSystem.Model)
		info.CPUModel = strings.TrimSpace(combined.Processor.Name)
		if combined.Processor.NumberOfCores > 0 {
			info.CPUCores = combined.Processor.NumberOfCores
		}
		for _, vg := range combined.VideoControllers {
			name := strings.TrimSpace(vg.Name)
			if name == "" || strings.Contains(strings.ToLower(name), "microsoft basic") {
				continue
			}
			info.GPUs = append(info.GPUs, name)
			if info.RefreshRateHz == 0 && vg.CurrentRefreshRate > 1 {
				info.RefreshRateHz = vg.CurrentRefreshRate
			}
		}
	}

	if info.Host == "" {
		info.Host = registryComputerModel()
	}
	if info.CPUModel == "" {
		info.CPUModel = getRegistryString(registry.LOCAL_MACHINE,
			`HARDWARE\DESCRIPTION\System\CentralProcessor\0`, "ProcessorNameString")
	}
	if info.CPUCores == 0 {
		info.CPUCores = runtime.NumCPU()
	}
	if len(info.GPUs) == 0 {
		if gpu := gpuFromRegistry(); gpu != "" {
			info.GPUs = []string{gpu}
		}
	}

	info.PackageCount, info.PackageManager = installedPrograms()
	info.ShellName, info.ShellVersion = windowsShell()
	info.Resolution = screenResolution()
	info.DE = "Fluent"
	info.WM = "Desktop Window Manager"
	info.Theme = windowsTheme()
	info.Terminal = windowsTerminal()
	info.Memory, info.Swap = memoryStatus()
	info.Disks = fixedDriveUsage()
	info.LocalIP = windowsLocalIP()
	info.Battery = powerStatusBattery()
	info.Locale = userLocale()

	return info, nil
}

// windowsVersion retrieves the Windows product name from the registry,
// corrected for Windows 11 via the real build number.
func windowsVersion() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return "Windows"
	}
	defer func() { _ = k.Close() }()

	productName, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return "Windows"
	}

	// ProductName still says "Windows 10" on Windows 11; builds >= 22000
	// are Windows 11.
	if _, _, build, rerr := rtlGetVersion(); rerr == nil && build >= 22000 &&
		strings.Contains(strings.ToLower(productName), "windows 10") {
		productName = strings.Replace(productName, "Windows 10", "Windows 11", 1)
	}

	if displayVersion, _, derr := k.GetStringValue("DisplayVersion"); derr == nil && displayVersion != "" {
		return fmt.Sprintf("%s %s", productName, displayVersion)
	}
	return productName
}

func windowsArch() string {
	if arch := os.Getenv("PROCESSOR_ARCHITECTURE"); arch != "" {
		return arch
	}
	return runtime.GOARCH
}

// windowsKernelVersion reports the NT version as major.minor.build.
func windowsKernelVersion() string {
	major, minor, build, err := rtlGetVersion()
	if err != nil {
		if b := getRegistryString(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, "CurrentBuild"); b != "" {
			return fmt.Sprintf("Build %s", b)
		}
		return ""
	}
	return fmt.Sprintf("%d.%d.%d", major, minor, build)
}

// windowsUptime reports milliseconds since boot via GetTickCount64.
func windowsUptime() uint64 {
	ret, _, _ := procGetTickCount64.Call()
	if ret == 0 {
		return 0
	}
	return uint64(time.Duration(ret) * time.Millisecond / time.Second)
}

// registryComputerModel reads the hardware vendor and model from the
// SystemInformation and BIOS registry keys.
func registryComputerModel() string {
	manufacturer := getRegistryString(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\SystemInformation`, "SystemManufacturer")
	model := getRegistryString(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\SystemInformation`, "SystemProductName")
	if manufacturer == "" {
		manufacturer = getRegistryString(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\BIOS`, "SystemManufacturer")
	}
	if model == "" {
		model = getRegistryString(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\BIOS`, "SystemProductName")
	}
	return strings.TrimSpace(manufacturer + " " + model)
}

// installedPrograms counts entries under both uninstall registry keys.
func installedPrograms() (int, string) {
	count := 0
	paths := []string{
		`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
		`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
	}
	for _, path := range paths {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			continue
		}
		subkeys, err := k.ReadSubKeyNames(-1)
		_ = k.Close()
		if err != nil {
			continue
		}
		count += len(subkeys)
	}
	if count == 0 {
		return 0, ""
	}
	return count, "registry"
}

// windowsShell identifies the shell from the parent process name, using
// the Toolhelp snapshot APIs so no PowerShell process is spawned just to
// ask who spawned us.
func windowsShell() (name, version string) {
	parent := strings.ToLower(parentProcessName())
	switch {
	case strings.Contains(parent, "pwsh"):
		return "PowerShell", powerShellVersion("pwsh")
	case strings.Contains(parent, "powershell"):
		return "PowerShell", powerShellVersion("powershell")
	case strings.Contains(parent, "cmd"):
		return "cmd.exe", ""
	case parent != "" && !strings.Contains(parent, "windowsterminal"):
		return strings.TrimSuffix(parent, ".exe"), ""
	}

	if os.Getenv("PSModulePath") != "" {
		return "PowerShell", powerShellVersion("powershell")
	}
	comspec := os.Getenv("COMSPEC")
	if comspec == "" {
		return "cmd.exe", ""
	}
	parts := strings.Split(comspec, `\`)
	return parts[len(parts)-1], ""
}

// parentProcessName returns the executable name of the parent process, or
// empty string on failure.
func parentProcessName() string {
	pid := uint32(os.Getpid())

	const TH32CS_SNAPPROCESS = 0x00000002

	type processEntry32 struct {
		dwSize              uint32
		cntUsage            uint32
		th32ProcessID       uint32
		th32DefaultHeapID   uintptr
		th32ModuleID        uint32
		cntThreads          uint32
		th32ParentProcessID uint32
		pcPriClassBase      int32
		dwFlags             uint32
		szExeFile           [260]uint16
	}

	snapshot, _, _ := procCreateToolhelp32Snapshot.Call(uintptr(TH32CS_SNAPPROCESS), 0)
	if snapshot == 0 || snapshot == uintptr(syscall.InvalidHandle) {
		return ""
	}
	defer func() { _ = windows.CloseHandle(windows.Handle(snapshot)) }()

	var pe processEntry32
	pe.dwSize = uint32(unsafe.Sizeof(pe))

	ret, _, _ := procProcess32FirstW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
	if ret == 0 {
		return ""
	}

	var parentID uint32
	for {
		if pe.th32ProcessID == pid {
			parentID = pe.th32ParentProcessID
			break
		}
		ret, _, _ = procProcess32NextW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
		if ret == 0 {
			break
		}
	}
	if parentID == 0 {
		return ""
	}

	pe.dwSize = uint32(unsafe.Sizeof(pe))
	ret, _, _ = procProcess32FirstW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
	if ret == 0 {
		return ""
	}
	for {
		if pe.th32ProcessID == parentID {
			return strings.TrimSpace(syscall.UTF16ToString(pe.szExeFile[:]))
		}
		ret, _, _ = procProcess32NextW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
		if ret == 0 {
			break
		}
	}
	return ""
}

// screenResolution reads the primary monitor size via GetSystemMetrics.
func screenResolution() string {
	const (
		smCxScreen = 0
		smCyScreen = 1
	)
	width, _, _ := procGetSystemMetrics.Call(uintptr(smCxScreen))
	height, _, _ := procGetSystemMetrics.Call(uintptr(smCyScreen))
	if width == 0 || height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", width, height)
}

// windowsTheme reports the light/dark mode from the Personalize key.
func windowsTheme() string {
	k, err := registry.OpenKey(registry.CURRENT_USER,
		`SOFTWARE\Microsoft\Windows\CurrentVersion\Themes\Personalize`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	apps, _, aerr := k.GetIntegerValue("AppsUseLightTheme")
	system, _, serr := k.GetIntegerValue("SystemUsesLightTheme")
	if aerr != nil && serr != nil {
		return ""
	}
	mode := func(v uint64) string {
		if v == 0 {
			return "Dark"
		}
		return "Light"
	}
	if aerr == nil && serr == nil && apps != system {
		return fmt.Sprintf("System: %s, Apps: %s", mode(system), mode(apps))
	}
	if aerr == nil {
		return mode(apps)
	}
	return mode(system)
}

func windowsTerminal() string {
	if os.Getenv("WT_SESSION") != "" {
		return "Windows Terminal"
	}
	if term := os.Getenv("TERM_PROGRAM"); term != "" {
		return term
	}
	return os.Getenv("TERM")
}

// memoryStatus reads RAM and pagefile usage from GlobalMemoryStatusEx.
// The pagefile figures include physical memory, so swap is the excess of
// the commit limit over RAM.
func memoryStatus() (ram, swap *MemStat) {
	var mem memoryStatusEx
	mem.dwLength = uint32(unsafe.Sizeof(mem))

	ret, _, _ := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&mem)))
	if ret == 0 {
		return nil, nil
	}

	ram = &MemStat{
		Used:  mem.ullTotalPhys - mem.ullAvailPhys,
		Total: mem.ullTotalPhys,
	}

	if mem.ullTotalPageFile > mem.ullTotalPhys {
		swapTotal := mem.ullTotalPageFile - mem.ullTotalPhys
		committed := mem.ullTotalPageFile - mem.ullAvailPageFile
		var swapUsed uint64
		if committed > ram.Used {
			swapUsed = committed - ram.Used
		}
		if swapUsed > swapTotal {
			swapUsed = swapTotal
		}
		swap = &MemStat{Used: swapUsed, Total: swapTotal}
	}
	return ram, swap
}

// fixedDriveUsage reports usage for every fixed drive letter.
func fixedDriveUsage() []DiskEntry {
	const driveFixed = 3

	mask, _, _ := procGetLogicalDrives.Call()
	if mask == 0 {
		return nil
	}

	var entries []DiskEntry
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		root := fmt.Sprintf(`%c:\`, 'A'+i)
		rootPtr, err := windows.UTF16PtrFromString(root)
		if err != nil {
			continue
		}
		driveType, _, _ := procGetDriveTypeW.Call(uintptr(unsafe.Pointer(rootPtr)))
		if driveType != driveFixed {
			continue
		}

		var freeBytesAvailable, totalBytes, totalFreeBytes uint64
		if err := windows.GetDiskFreeSpaceEx(rootPtr, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
			debugf("GetDiskFreeSpaceEx %s: %v", root, err)
			continue
		}
		if totalBytes == 0 {
			continue
		}
		entries = append(entries, DiskEntry{
			Mount: fmt.Sprintf("%c:", 'A'+i),
			Used:  totalBytes - totalFreeBytes,
			Total: totalBytes,
		})
	}
	return entries
}

// powerStatusBattery reads the battery state via GetSystemPowerStatus.
// Returns nil when no battery is present.
func powerStatusBattery() *BatteryInfo {
	var status systemPowerStatus
	ret, _, _ := procGetSystemPowerStatus.Call(uintptr(unsafe.Pointer(&status)))
	if ret == 0 {
		return nil
	}

	const (
		noSystemBattery = 128
		charging        = 8
		unknownPercent  = 255
	)
	if status.batteryFlag&noSystemBattery != 0 || status.batteryLifePercent == unknownPercent {
		return nil
	}

	state := "Discharging"
	if status.batteryFlag&charging != 0 {
		state = "Charging"
	} else if status.acLineStatus == 1 {
		state = "AC"
	}
	return &BatteryInfo{Percent: int(status.batteryLifePercent), Status: state}
}

// userLocale returns the user locale name (e.g. "en-US").
func userLocale() string {
	const localeNameMaxLength = 85
	var buf [localeNameMaxLength]uint16
	ret, _, _ := procGetUserDefaultLocaleName.Call(
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}
	return syscall.UTF16ToString(buf[:])
}

// gpuFromRegistry enumerates the video controller class keys for an
// adapter description, skipping the Microsoft Basic Display Adapter.
func gpuFromRegistry() string {
	classKey := `SYSTEM\CurrentControlSet\Control\Class\{4d36e968-e325-11ce-bfc1-08002be10318}`

	k, err := registry.OpenKey(registry.LOCAL_MACHINE, classKey, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	subkeys, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return ""
	}

	for _, subkey := range subkeys {
		subkeyPath := classKey + `\` + subkey
		for _, value := range []string{"DriverDesc", "Device Description", "HardwareInformation.AdapterString"} {
			if gpu := getRegistryString(registry.LOCAL_MACHINE, subkeyPath, value); gpu != "" {
				if !strings.Contains(strings.ToLower(gpu), "microsoft basic") {
					return gpu
				}
			}
		}
	}
	return ""
}

// getRegistryString safely reads a string value from the registry,
// returning empty string when the key, path or value is missing.
func getRegistryString(key registry.Key, path string, valueName string) string {
	k, err := registry.OpenKey(key, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return ""
	}
	return value
}

// rtlGetVersion calls ntdll.RtlGetVersion for accurate version numbers;
// the documented GetVersionEx lies to manifests-less processes.
func rtlGetVersion() (major, minor, build uint32, err error) {
	type osVersionInfoEx struct {
		dwOSVersionInfoSize uint32
		dwMajorVersion      uint32
		dwMinorVersion      uint32
		dwBuildNumber       uint32
		dwPlatformID        uint32
		szCSDVersion        [128]uint16
		wServicePackMajor   uint16
		wServicePackMinor   uint16
		wSuiteMask          uint16
		wProductType        byte
		wReserved           byte
	}

	var v osVersionInfoEx
	v.dwOSVersionInfoSize = uint32(unsafe.Sizeof(v))

	ret, _, callErr := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&v)))
	if ret != 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return 0, 0, 0, callErr
		}
		return 0, 0, 0, fmt.Errorf("RtlGetVersion failed: ret=%d", ret)
	}
	return v.dwMajorVersion, v.dwMinorVersion, v.dwBuildNumber, nil
}

// windowsLocalIP asks GetBestInterface which interface routes to a public
// address and returns that interface's IPv4 address, falling back to the
// UDP-dial trick.
func windowsLocalIP() string {
	if ip := localIPBestIface(); ip != "" {
		return ip
	}

	d := net.Dialer{Timeout: 500 * time.Millisecond}
	conn, err := d.Dial("udp", "8.8.8.8:53")
	if err != nil {
		return ""
	}
	defer func() { _ = conn.Close() }()
	if ua, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		if ip4 := ua.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
			return ip4.String()
		}
	}
	return ""
}

func localIPBestIface() string {
	destIP := net.ParseIP("8.8.8.8").To4()
	if destIP == nil {
		return ""
	}

	// GetBestInterface wants the destination as a network byte order DWORD.
	dest := binary.BigEndian.Uint32(destIP)

	var ifIndex uint32
	ret, _, _ := procGetBestInterface.Call(uintptr(dest), uintptr(unsafe.Pointer(&ifIndex)))
	if ret != 0 {
		return ""
	}

	ifi, err := net.InterfaceByIndex(int(ifIndex))
	if err != nil {
		return ""
	}
	addrs, err := ifi.Addrs()
	if err != nil {
		return ""
	}
	for _, a := range addrs {
		var ip net.IP
		switch v := a.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if ip4 := ip.To4(); ip4 != nil && !ip4.IsLoopback() {
			return ip4.String()
		}
	}
	return ""
}
