// Package main provides the gofetch command-line tool: it collects local
// host information and prints it next to an ASCII logo.
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"gofetch/ascii"
	"gofetch/config"
	"gofetch/sysinfo"
)

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func main() {
	cfgPath := flag.String("config", config.DefaultPath(), "path to config file")
	gap := flag.Int("gap", 0, "number of spaces between logo and info (overrides config)")
	logo := flag.String("logo", "", "logo variant: auto, compact or none (overrides config)")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	debug := flag.Bool("debug", false, "enable debug output (sets GOFETCH_DEBUG)")
	flag.Parse()

	if *debug {
		_ = os.Setenv("GOFETCH_DEBUG", "1")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gofetch: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "gap":
			cfg.Gap = *gap
		case "logo":
			cfg.Logo = *logo
		case "no-color":
			cfg.NoColor = *noColor
		}
	})

	// Collection never fails as a whole; unavailable metrics come back as
	// unset fields and render as the placeholder.
	info, err := sysinfo.GetSystemInfo()
	if err != nil {
		info = &sysinfo.SystemInfo{}
	}

	lines := sysinfo.Render(info, sysinfo.RenderOptions{
		NoColor:     cfg.NoColor,
		Placeholder: cfg.Placeholder,
	})
	lines = append([]string{""}, lines...)
	if !cfg.NoColor {
		lines = append(lines, "", colorBar(), "")
	}

	var art []string
	switch cfg.Logo {
	case "compact":
		art = ascii.GetCompactLogo()
	case "none":
	default:
		art = ascii.GetLogo(info.OS)
	}
	if cfg.NoColor {
		for i, line := range art {
			art[i] = ansiRegex.ReplaceAllString(line, "")
		}
	}

	displayColumns(art, lines, cfg.Gap)
}

// displayColumns prints the logo and info lines side by side, top-aligned.
// Widths are computed on the visible text so color codes don't break
// alignment.
func displayColumns(logo, infoLines []string, gapSize int) {
	logoWidth := 0
	for _, line := range logo {
		if w := visibleWidth(line); w > logoWidth {
			logoWidth = w
		}
	}

	maxLines := len(logo)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}

	gap := strings.Repeat(" ", gapSize)
	for i := 0; i < maxLines; i++ {
		var logoLine, infoLine string

		if i < len(logo) {
			logoLine = logo[i]
			if padding := logoWidth - visibleWidth(logoLine); padding > 0 {
				logoLine += strings.Repeat(" ", padding)
			}
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}

		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		fmt.Printf("%s%s%s\n", logoLine, gap, infoLine)
	}
}

// visibleWidth calculates the display width of a string excluding ANSI
// escape codes, counting wide runes correctly.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// colorBar generates a row of the 16 basic terminal background colors,
// a visual reference in the style of other fetch utilities.
func colorBar() string {
	var bar strings.Builder
	for bg := 40; bg <= 47; bg++ {
		fmt.Fprintf(&bar, "\033[%dm   ", bg)
	}
	for bg := 100; bg <= 107; bg++ {
		fmt.Fprintf(&bar, "\033[%dm   ", bg)
	}
	bar.WriteString(sysinfo.ColorReset)
	return bar.String()
}
