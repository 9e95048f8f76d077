package sysinfo

import (
	"strconv"
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1536, "1.5 KiB"},
		{1024 * 1024, "1.0 MiB"},
		{8388608000, "7.8 GiB"},
		{16777216000, "15.6 GiB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3.0 TiB"},
	}

	for _, tc := range tests {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Fatalf("FormatBytes(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

// Larger byte counts never render a smaller magnitude within a unit tier.
func TestFormatBytesMonotonic(t *testing.T) {
	const gib = 1024 * 1024 * 1024
	prev := -1.0
	for _, b := range []uint64{1 * gib, 2 * gib, 10 * gib, 100 * gib, 1000 * gib} {
		s := FormatBytes(b)
		fields := strings.Fields(s)
		if len(fields) != 2 {
			t.Fatalf("unparseable FormatBytes output %q", s)
		}
		if fields[1] != "GiB" {
			continue
		}
		mag, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			t.Fatalf("unparseable magnitude in %q: %v", s, err)
		}
		if mag < prev {
			t.Fatalf("magnitude decreased: %q after %.1f GiB", s, prev)
		}
		prev = mag
	}
}

func TestFormatUsage(t *testing.T) {
	got := FormatUsage(8388608000, 16777216000)
	if got != "7.8 GiB / 15.6 GiB (49%)" && got != "7.8 GiB / 15.6 GiB (50%)" {
		t.Fatalf("FormatUsage = %q; want ~\"7.8 GiB / 15.6 GiB (50%%)\"", got)
	}
	if got := FormatUsage(0, 0); got != "0 B / 0 B" {
		t.Fatalf("FormatUsage zero total = %q", got)
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 mins"},
		{59, "0 mins"},
		{60, "1 min"},
		{3600, "1 hour"},
		{90061, "1 day, 1 hour, 1 min"},
		{2*86400 + 5*3600 + 30*60, "2 days, 5 hours, 30 mins"},
	}
	for _, tc := range tests {
		if got := FormatUptime(tc.in); got != tc.want {
			t.Fatalf("FormatUptime(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("Hello World", 8); got != "Hello..." {
		t.Fatalf("TruncateString short failed: got %q", got)
	}
	if got := TruncateString("Hi", 5); got != "Hi" {
		t.Fatalf("TruncateString no-truncate failed: got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("Hi", 5); got != "Hi   " {
		t.Fatalf("PadRight failed: got %q", got)
	}
	if got := PadRight("HelloWorld", 5); got != "HelloWorld" {
		t.Fatalf("PadRight truncate-case failed: got %q", got)
	}
}
