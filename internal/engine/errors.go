// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"errors"
	"fmt"

	"github.com/regview/regview/internal/descriptor"
	"github.com/regview/regview/internal/register"
)

const (
	// NoticeNotMatching is shown when a strict session rejects a pattern.
	NoticeNotMatching = "Not matching"

	emptyEntryFormat = "Entry '%s' is empty"
	emptySubmitText  = "entry key cannot be empty"
)

var (
	// ErrAborted is returned when the user abandons the session.
	ErrAborted = errors.New("aborted")
	// ErrValidation is the sentinel error wrapped by ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError is a fatal session error: either no entry is eligible for an
// action that needs one, or an empty pattern was submitted.
// It wraps ErrValidation for errors.Is() compatibility.
type ValidationError struct {
	// Action is set when the error is the no-eligible-entry precondition.
	Action descriptor.ActionKind
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.Reason }

// Unwrap returns ErrValidation for errors.Is() compatibility.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// EmptySubmit reports whether the error was caused by accepting an empty input line.
func (e *ValidationError) EmptySubmit() bool { return e.Action == "" }

// CheckEligible fails when d's action needs an existing entry and keys is empty.
// It runs before any pane opens or any input is read.
func CheckEligible(d descriptor.Descriptor, keys []register.Key) error {
	if len(keys) > 0 || !d.Action.NeedsEntries() {
		return nil
	}
	return &ValidationError{
		Action: d.Action,
		Reason: fmt.Sprintf("no entry suitable for %s", d.Action),
	}
}

// EmptyEntryNotice formats the notice for a key that has no live value.
func EmptyEntryNotice(k register.Key) string {
	return fmt.Sprintf(emptyEntryFormat, k.String())
}
