package timer

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
)

// AppendDigit appends d to the digit string. It rejects a leading zero, a full
// buffer and anything that is not an ASCII digit by returning current unchanged.
func AppendDigit(current string, d rune) string {
	if d < '0' || d > '9' {
		return current
	}
	if current == "" && d == '0' {
		return current
	}
	if len(current) >= config.MaxDigits {
		return current
	}
	return current + string(d)
}

// Backspace drops the last digit. No-op on an empty string.
func Backspace(current string) string {
	if current == "" {
		return current
	}
	return current[:len(current)-1]
}

// IsStartEnabled reports whether a countdown can be started from current.
func IsStartEnabled(current string) bool {
	return current != ""
}

// Pad left-pads current with zeros to the HHMMSS width.
func Pad(current string) string {
	if len(current) >= config.MaxDigits {
		return current
	}
	return strings.Repeat("0", config.MaxDigits-len(current)) + current
}

// Display is the HH/MM/SS split of a padded digit string.
type Display struct {
	Hours   string
	Minutes string
	Seconds string
}

func (d Display) String() string {
	return fmt.Sprintf("%sh %sm %ss", d.Hours, d.Minutes, d.Seconds)
}

// FormatDisplay pads current and splits it for rendering. Input longer than
// the buffer is truncated to its last six characters.
func FormatDisplay(current string) Display {
	padded := Pad(current)
	if len(padded) > config.MaxDigits {
		padded = padded[len(padded)-config.MaxDigits:]
	}
	return Display{
		Hours:   padded[0:2],
		Minutes: padded[2:4],
		Seconds: padded[4:6],
	}
}
