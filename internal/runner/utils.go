package runner

import (
	"fmt"
	"strings"
	"time"
)

// FormatNumber formats an integer with comma separators
func FormatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var result strings.Builder
	if neg {
		_, _ = result.WriteString("-")
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			_, _ = result.WriteString(",")
		}
		_, _ = result.WriteRune(c)
	}
	return result.String()
}

// FormatDuration formats a duration in the most appropriate unit
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0"
	}

	ns := d.Nanoseconds()

	if ns < 1000 {
		return fmt.Sprintf("%dns", ns)
	}

	if ns < 1_000_000 {
		return fmt.Sprintf("%.1fµs", float64(ns)/1000.0)
	}

	if ns < 1_000_000_000 {
		return fmt.Sprintf("%.2fms", float64(ns)/1_000_000.0)
	}

	return fmt.Sprintf("%.3fs", float64(ns)/1_000_000_000.0)
}

// FormatBytes formats a byte count in binary units (KiB, MiB, GiB)
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 4; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTP"[exp])
}

// FormatGBps formats a bytes-per-second rate as decimal GB/s
func FormatGBps(bytesPerSec float64) string {
	return fmt.Sprintf("%.2f GB/s", bytesPerSec/1e9)
}
