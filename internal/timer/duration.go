package timer

import (
	"fmt"
	"math"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
)

// ParseDuration converts a 6-digit HHMMSS string into a duration. Field ranges
// are not normalized, so "009999" is 99 minutes and 99 seconds.
func ParseDuration(s string) (time.Duration, error) {
	if len(s) != config.MaxDigits {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidDigits, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: got %q", ErrInvalidDigits, s)
		}
	}
	hours := twoDigits(s[0:2])
	minutes := twoDigits(s[2:4])
	seconds := twoDigits(s[4:6])
	total := int64(hours)*3600 + int64(minutes)*60 + int64(seconds)
	return time.Duration(total) * time.Second, nil
}

func twoDigits(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

// SweepAngle is the elapsed fraction of total expressed in degrees.
// A zero total is treated as fully elapsed.
func SweepAngle(total, remaining time.Duration) float64 {
	if total <= 0 {
		return 360
	}
	switch {
	case remaining <= 0:
		return 360
	case remaining >= total:
		return 0
	}
	return float64(total-remaining) * 360 / float64(total)
}

// FormatLabel renders remaining time rounded to the nearest second. Hours are
// dropped when zero, minutes when both hours and minutes are zero.
func FormatLabel(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	total := int(math.Round(remaining.Seconds()))
	hr := total / 3600
	min := (total % 3600) / 60
	sec := total % 60

	label := ""
	if hr > 0 {
		label = fmt.Sprintf("%02d : ", hr)
	}
	if hr > 0 || min > 0 {
		label += fmt.Sprintf("%02d : ", min)
	}
	return label + fmt.Sprintf("%02d", sec)
}
