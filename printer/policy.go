package printer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Terminal abstracts the stdout probes the auto color policy relies on, so
// the policy can be tested without a real console.
type Terminal interface {
	// IsTerminal reports whether stdout is interactive.
	IsTerminal() bool
	// EnableANSI attempts to turn on escape-sequence processing for the
	// process. Idempotent; on platforms with native ANSI support it is a
	// no-op returning nil.
	EnableANSI() error
}

// Resolve builds the printer for one invocation. Silent wins over any color
// choice. Otherwise the mode is always, never or auto; unrecognized values
// fall back to auto. Auto enables color only when stdout is an interactive
// terminal and escape processing is available.
func Resolve(silent bool, color string, t Terminal) *Printer {
	if silent {
		return Silent()
	}

	switch color {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI)
		return Color()
	case "never":
		return NoColor()
	default:
		if t.IsTerminal() && t.EnableANSI() == nil {
			return Color()
		}
		lipgloss.SetColorProfile(termenv.Ascii)
		return NoColor()
	}
}
