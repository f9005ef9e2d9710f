// Package cli provides shared formatting helpers for terminal output.
package cli

import (
	"os"

	"golang.org/x/term"
)

// colorEnabled is false when NO_COLOR env var is set (per no-color.org)
// or when stdout is not a terminal.
var colorEnabled = os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))

// SetColor forces ANSI colour on or off.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

func wrap(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + "\033[0m"
}

// Green wraps s in ANSI green. Returns s unchanged when colour is off.
func Green(s string) string {
	return wrap("\033[32m", s)
}

// Yellow wraps s in ANSI yellow. Returns s unchanged when colour is off.
func Yellow(s string) string {
	return wrap("\033[33m", s)
}

// Red wraps s in ANSI red. Returns s unchanged when colour is off.
func Red(s string) string {
	return wrap("\033[31m", s)
}

// Bold wraps s in ANSI bold. Returns s unchanged when colour is off.
func Bold(s string) string {
	return wrap("\033[1m", s)
}
