// Package ui renders the runner's human-facing output: ANSI coloring with
// TTY-aware auto-suppression.
package ui

import (
	"os"

	"golang.org/x/term"
)

const (
	red   = "\033[31m"
	green = "\033[32m"
	gray  = "\033[90m"
	reset = "\033[0m"
)

// ResolveColor decides whether ANSI color should be emitted: --no-color
// always wins, otherwise color is only used when stdout is a terminal.
func ResolveColor(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// UI wraps text in color codes when enabled, and passes it through
// unchanged otherwise.
type UI struct {
	Color bool
}

// New creates a UI with colorization already resolved.
func New(color bool) *UI {
	return &UI{Color: color}
}

func (u *UI) wrap(code, s string) string {
	if !u.Color {
		return s
	}
	return code + s + reset
}

// Red renders failure-colored text.
func (u *UI) Red(s string) string { return u.wrap(red, s) }

// Green renders success-colored text.
func (u *UI) Green(s string) string { return u.wrap(green, s) }

// Gray renders dim informational text.
func (u *UI) Gray(s string) string { return u.wrap(gray, s) }
