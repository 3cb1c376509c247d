// Package ui provides terminal presentation helpers: headless
// detection, a test-suite spinner, markdown rendering, and the theme
// scaffolding wizard.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Terminal captures the presentation capabilities of the current
// process: whether a TTY is attached and whether color output is
// allowed. Commands consult it instead of probing os.Stdin directly.
type Terminal struct {
	forced  *bool
	NoColor bool
}

// NewTerminal creates a Terminal that detects headless mode from the
// TTY state of os.Stdout.
func NewTerminal(noColor bool) *Terminal {
	return &Terminal{NoColor: noColor}
}

// IsHeadless returns true when the process should avoid interactive
// components. ForceHeadless overrides TTY detection.
func (t *Terminal) IsHeadless() bool {
	if t.forced != nil {
		return *t.forced
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ForceHeadless overrides TTY detection. Tests use it to pin behavior.
func (t *Terminal) ForceHeadless(force bool) {
	t.forced = &force
}

// Interactive reports whether animated components may run.
func (t *Terminal) Interactive() bool {
	return !t.IsHeadless() && !t.NoColor
}
