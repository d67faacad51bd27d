package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const day = 24 * time.Hour

// ParseDuration parses a duration string like time.ParseDuration does and additionally
// accepts a leading day component ("7d", "1d12h") and bare integers meaning milliseconds.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("empty duration")
	}

	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}

	daysPart, rest, hasDays := strings.Cut(value, "d")
	if !hasDays {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid duration %q", value)
		}

		return d, nil
	}

	days, err := strconv.Atoi(daysPart)
	if err != nil || days < 0 {
		return 0, errors.Errorf("invalid day component in duration %q", value)
	}

	total := time.Duration(days) * day
	if rest == "" {
		return total, nil
	}

	remainder, err := time.ParseDuration(rest)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid duration %q", value)
	}
	if remainder < 0 {
		return 0, errors.Errorf("invalid duration %q", value)
	}

	return total + remainder, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats a duration for humans ("45s", "15m0s", "1h30m", "7d0h").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	case duration < time.Hour:
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	case duration < day:
		return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
	default:
		return fmt.Sprintf("%dd%dh", int(duration/day), int(duration.Hours())%24)
	}
}
