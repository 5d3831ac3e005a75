// Package term holds the ANSI color state shared by logging and display.
//
// Colors are package-level strings so callers can concatenate them directly;
// [Configure] sets them once at startup, and when colors are off every
// variable is the empty string, which makes the concatenation a no-op.
package term

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/backmassage/scaleup/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // Reset sequence.
)

// palette maps each package variable to its escape sequence.
var palette = map[*string]string{
	&Red:     "\033[1;91m",
	&Green:   "\033[1;92m",
	&Yellow:  "\033[1;93m",
	&Blue:    "\033[1;94m",
	&Cyan:    "\033[1;96m",
	&Magenta: "\033[1;95m",
	&NC:      "\033[0m",
}

// Configure resolves the color mode and sets the package-level ANSI
// variables. Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	on := resolve(mode)
	for v, seq := range palette {
		if on {
			*v = seq
		} else {
			*v = ""
		}
	}
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// resolve decides whether colors should be on, honoring the NO_COLOR
// convention (https://no-color.org) and dumb terminals in auto mode.
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
