// Package ascii provides ASCII art logos for the supported operating
// systems. Logos are color-coded using ANSI escape sequences.
package ascii

import (
	"runtime"
	"strings"

	"gofetch/sysinfo"
)

// GetLogo returns the logo for the current platform. osName is the
// collected OS string and refines the choice on Linux (distro hints).
func GetLogo(osName string) []string {
	switch runtime.GOOS {
	case "linux":
		return getLinuxLogo(osName)
	case "windows":
		return getWindowsLogo()
	case "darwin":
		return getAppleLogo()
	default:
		return GetCompactLogo()
	}
}

// getLinuxLogo returns Tux. Arch gets its own glyph because its users
// notice.
func getLinuxLogo(osName string) []string {
	if strings.Contains(strings.ToLower(osName), "arch") {
		return getArchLogo()
	}
	return getTuxLogo()
}

func getTuxLogo() []string {
	c := sysinfo.ColorWhite
	y := sysinfo.ColorYellow
	r := sysinfo.ColorReset

	return []string{
		c + "          a8888b." + r,
		c + "         d888888b." + r,
		c + "         8P\"YP\"Y88" + r,
		c + "         8|o||o|88" + r,
		c + "         8" + y + "'    .;" + c + "88" + r,
		c + "         8" + y + "`._.'" + c + " Y88." + r,
		c + "        d/      `8b." + r,
		c + "      .dP   .     Y8b." + r,
		c + "     d8:'   \"   `::88b." + r,
		c + "    d8\"           `Y88b" + r,
		c + "   :8P     '       :888" + r,
		c + "    8a.    :      _a88P" + r,
		y + "  ._/\"Yaa_ :    .| 88P|" + r,
		y + "  \\    YP\"      `| 8P  `." + r,
		y + "  /     \\._____.d|    .'" + r,
		y + "  `--..__)888888P`._.'" + r,
	}
}

func getArchLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + "                   -`" + r,
		c + "                  .o+`" + r,
		c + "                 `ooo/" + r,
		c + "                `+oooo:" + r,
		c + "               `+oooooo:" + r,
		c + "               -+oooooo+:" + r,
		c + "             `/:-:++oooo+:" + r,
		c + "            `/++++/+++++++:" + r,
		c + "           `/++++++++++++++:" + r,
		c + "          `/+++ooooooooooooo/`" + r,
		c + "         ./ooosssso++osssssso+`" + r,
		c + "        .oossssso-````/ossssss+`" + r,
		c + "       -osssssso.      :ssssssso." + r,
		c + "      :osssssss/        osssso+++." + r,
		c + "     /ossssssss/        +ssssooo/-" + r,
		c + "   `/ossssso+/:-        -:/+osssso+-" + r,
		c + "  `+sso+:-`                 `.-/+oso:" + r,
		c + " `++:.                           `-/+/" + r,
		c + " .`                                 `/" + r,
	}
}

func getWindowsLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + "                               ..,," + r,
		c + "                    ....,,:;+ccllll" + r,
		c + "      ...,,+:;  cllllllllllllllllll" + r,
		c + ",cclllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "llllllllllllll  lllllllllllllllllll" + r,
		c + "`'ccllllllllll  lllllllllllllllllll" + r,
	}
}

func getAppleLogo() []string {
	g := sysinfo.ColorGreen
	y := sysinfo.ColorYellow
	r := sysinfo.ColorRed
	p := sysinfo.ColorPurple
	b := sysinfo.ColorBlue
	reset := sysinfo.ColorReset

	return []string{
		g + "                    'c." + reset,
		g + "                 ,xNMM." + reset,
		g + "               .OMMMMo" + reset,
		g + "               OMMM0," + reset,
		g + "     .;loddo:' loolloddol;." + reset,
		g + "   cKMMMMMMMMMMNWMMMMMMMMMM0:" + reset,
		y + " .KMMMMMMMMMMMMMMMMMMMMMMMWd." + reset,
		y + " XMMMMMMMMMMMMMMMMMMMMMMMX." + reset,
		r + ";MMMMMMMMMMMMMMMMMMMMMMMM:" + reset,
		r + ":MMMMMMMMMMMMMMMMMMMMMMMM:" + reset,
		r + ".MMMMMMMMMMMMMMMMMMMMMMMMX." + reset,
		p + " kMMMMMMMMMMMMMMMMMMMMMMMMWd." + reset,
		p + " .XMMMMMMMMMMMMMMMMMMMMMMMMMMk" + reset,
		p + "  .XMMMMMMMMMMMMMMMMMMMMMMMMK." + reset,
		b + "    kMMMMMMMMMMMMMMMMMMMMMMd" + reset,
		b + "     ;KMMMMMMMWXXWMMMMMMMk." + reset,
		b + "       .cooc,.    .,coo:." + reset,
	}
}

// GetCompactLogo returns the plain block logo used by the -logo compact
// mode and as the generic fallback.
func GetCompactLogo() []string {
	c := sysinfo.ColorBlue
	r := sysinfo.ColorReset

	line := c + "/////////////////  /////////////////" + r
	logo := make([]string, 0, 15)
	for i := 0; i < 7; i++ {
		logo = append(logo, line)
	}
	logo = append(logo, "")
	for i := 0; i < 7; i++ {
		logo = append(logo, line)
	}
	return logo
}
