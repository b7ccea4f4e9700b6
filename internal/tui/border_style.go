// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// BorderNone disables the border (zero value).
	BorderNone BorderStyle = ""
	// BorderNormal renders a standard single-line border.
	BorderNormal BorderStyle = "normal"
	// BorderRounded renders a single-line border with rounded corners.
	BorderRounded BorderStyle = "rounded"
	// BorderThick renders a thick/heavy border.
	BorderThick BorderStyle = "thick"
	// BorderDouble renders a double-line border.
	BorderDouble BorderStyle = "double"
	// BorderHidden renders an invisible border that still occupies space.
	BorderHidden BorderStyle = "hidden"
)

// ErrInvalidBorderStyle is the sentinel error wrapped by InvalidBorderStyleError.
var ErrInvalidBorderStyle = errors.New("invalid border style")

type (
	// BorderStyle is the border drawn around the preview pane.
	// The zero value ("") means no border.
	BorderStyle string

	// InvalidBorderStyleError is returned when a BorderStyle value is not recognized.
	// It wraps ErrInvalidBorderStyle for errors.Is() compatibility.
	InvalidBorderStyleError struct {
		Value BorderStyle
	}
)

// String returns the string representation of the BorderStyle.
func (b BorderStyle) String() string { return string(b) }

// Validate returns nil if the BorderStyle is one of the defined styles,
// or a validation error if it is not.
func (b BorderStyle) Validate() error {
	switch b {
	case BorderNone, BorderNormal, BorderRounded, BorderThick, BorderDouble, BorderHidden:
		return nil
	default:
		return &InvalidBorderStyleError{Value: b}
	}
}

// ParseBorderStyle converts a configuration value to a BorderStyle. "none" and
// the empty string both disable the border.
func ParseBorderStyle(s string) (BorderStyle, error) {
	b := BorderStyle(strings.ToLower(strings.TrimSpace(s)))
	if b == "none" {
		b = BorderNone
	}
	if err := b.Validate(); err != nil {
		return BorderNone, err
	}
	return b, nil
}

// Border returns the lipgloss border for b, and false for BorderNone.
func (b BorderStyle) Border() (lipgloss.Border, bool) {
	switch b {
	case BorderNormal:
		return lipgloss.NormalBorder(), true
	case BorderRounded:
		return lipgloss.RoundedBorder(), true
	case BorderThick:
		return lipgloss.ThickBorder(), true
	case BorderDouble:
		return lipgloss.DoubleBorder(), true
	case BorderHidden:
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}

// Error implements the error interface for InvalidBorderStyleError.
func (e *InvalidBorderStyleError) Error() string {
	return fmt.Sprintf("invalid border style %q (valid: none, normal, rounded, thick, double, hidden)", e.Value)
}

// Unwrap returns ErrInvalidBorderStyle for errors.Is() compatibility.
func (e *InvalidBorderStyleError) Unwrap() error { return ErrInvalidBorderStyle }
