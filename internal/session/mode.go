// SPDX-License-Identifier: MPL-2.0

package session

import (
	"errors"
	"fmt"
)

const (
	// ModeAlways opens the full pane as soon as the session starts.
	ModeAlways PreviewMode = "always"
	// ModeConfirmOnRepeat opens the full pane and confirms a key typed twice.
	ModeConfirmOnRepeat PreviewMode = "confirm-on-repeat"
	// ModeQuickOnly opens a passive pane and completes on the first accepted key.
	ModeQuickOnly PreviewMode = "quick-only"
	// ModeNever opens no pane; the session relies on notices alone.
	ModeNever PreviewMode = "never"
)

// ErrInvalidPreviewMode is returned when a PreviewMode value is not recognized.
var ErrInvalidPreviewMode = errors.New("invalid preview mode")

type (
	// PreviewMode selects how the preview pane is shown during a session.
	PreviewMode string

	// InvalidPreviewModeError is returned when a PreviewMode value is not recognized.
	// It wraps ErrInvalidPreviewMode for errors.Is() compatibility.
	InvalidPreviewModeError struct {
		Value PreviewMode
	}
)

// Modes returns every valid preview mode.
func Modes() []PreviewMode {
	return []PreviewMode{ModeAlways, ModeConfirmOnRepeat, ModeQuickOnly, ModeNever}
}

// String returns the mode name.
func (m PreviewMode) String() string { return string(m) }

// Validate returns an error if the mode is not one of the defined modes.
func (m PreviewMode) Validate() error {
	switch m {
	case ModeAlways, ModeConfirmOnRepeat, ModeQuickOnly, ModeNever:
		return nil
	default:
		return &InvalidPreviewModeError{Value: m}
	}
}

// opensPane reports whether the mode shows a pane at session start.
func (m PreviewMode) opensPane() bool { return m != ModeNever }

// noConfirm reports whether the mode completes without an explicit submit.
func (m PreviewMode) noConfirm() bool { return m == ModeQuickOnly || m == ModeNever }

// Error implements the error interface.
func (e *InvalidPreviewModeError) Error() string {
	return fmt.Sprintf("invalid preview mode %q (valid: always, confirm-on-repeat, quick-only, never)", e.Value)
}

// Unwrap returns ErrInvalidPreviewMode for errors.Is() compatibility.
func (e *InvalidPreviewModeError) Unwrap() error { return ErrInvalidPreviewMode }
