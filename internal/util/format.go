// Package util holds small formatting helpers for terminal output.
package util

import (
	"fmt"
	"time"
)

// FormatSize renders a byte count with a binary unit, e.g. "1.5 KB".
func FormatSize(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	const units = "KMG"
	div, exp := unit, 0
	for m := n / unit; m >= unit && exp < len(units)-1; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), units[exp])
}

// FormatRemaining renders the time left until deadline, e.g. "14m59s" or
// "2h5m". A deadline at or before now reads "expired".
func FormatRemaining(deadline, now time.Time) string {
	d := deadline.Sub(now).Round(time.Second)
	switch {
	case d <= 0:
		return "expired"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
