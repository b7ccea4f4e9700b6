// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	// ThemeDefault uses the regview palette.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm palette.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula palette.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin palette.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the terminal's 16 ANSI colors.
	ThemeBase16 Theme = "base16"

	// InteractiveEnv is set in the environment of a running picker so a nested
	// regview invocation can tell it has no terminal of its own.
	InteractiveEnv = "REGVIEW_INTERACTIVE"
)

// ErrInvalidTheme is the sentinel error wrapped by InvalidThemeError.
var ErrInvalidTheme = errors.New("invalid theme")

type (
	// Theme represents the visual theme of the picker.
	Theme string

	// InvalidThemeError is returned when a Theme value is not recognized.
	// It wraps ErrInvalidTheme for errors.Is() compatibility.
	InvalidThemeError struct {
		Value Theme
	}

	// Config holds common configuration for the picker.
	Config struct {
		// Theme specifies the visual theme to use.
		Theme Theme
		// Width specifies the width of the picker (0 for auto).
		Width TerminalDimension
		// Output specifies where the picker is drawn. It defaults to stderr so
		// the chosen key can be captured from stdout.
		Output io.Writer
		// Input is read for key presses; nil means stdin.
		Input io.Reader
	}
)

// DefaultConfig returns the default configuration for the picker.
func DefaultConfig() Config {
	return Config{
		Theme:  ThemeDefault,
		Width:  0,
		Output: os.Stderr,
	}
}

// IsNestedInteractive returns true if running inside another regview picker.
// This is detected by the REGVIEW_INTERACTIVE environment variable.
func IsNestedInteractive() bool {
	return os.Getenv(InteractiveEnv) != ""
}

// IsInteractive reports whether a picker can be drawn: stdin is a terminal and
// no other picker owns it.
func IsInteractive() bool {
	return isInputTerminal() && !IsNestedInteractive()
}

// isInputTerminal returns true if stdin is connected to a terminal.
// Returns false when running inside command substitution ($()) or pipes.
func isInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// String returns the theme name.
func (t Theme) String() string { return string(t) }

// Validate returns nil if the Theme is one of the defined themes.
func (t Theme) Validate() error {
	switch t {
	case ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16:
		return nil
	default:
		return &InvalidThemeError{Value: t}
	}
}

// Error implements the error interface for InvalidThemeError.
func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("invalid theme %q (valid: default, charm, dracula, catppuccin, base16)", e.Value)
}

// Unwrap returns ErrInvalidTheme for errors.Is() compatibility.
func (e *InvalidThemeError) Unwrap() error { return ErrInvalidTheme }
