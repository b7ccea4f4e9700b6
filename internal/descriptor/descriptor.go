// SPDX-License-Identifier: MPL-2.0

package descriptor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/regview/regview/internal/classify"
	"github.com/regview/regview/internal/register"
)

const (
	// ActionInsert inserts the entry's contents.
	ActionInsert ActionKind = "insert"
	// ActionJump moves to the location the entry refers to.
	ActionJump ActionKind = "jump"
	// ActionView displays the entry.
	ActionView ActionKind = "view"
	// ActionModify changes an existing entry in place.
	ActionModify ActionKind = "modify"
	// ActionSet stores a new value, possibly overwriting.
	ActionSet ActionKind = "set"
)

var (
	// ErrInvalidActionKind is returned when an ActionKind value is not recognized.
	ErrInvalidActionKind = errors.New("invalid action kind")
	// ErrInvalidDescriptor is the sentinel error wrapped by InvalidDescriptorError.
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

type (
	// ActionKind is what the calling command does with the chosen entry.
	ActionKind string

	// InvalidActionKindError is returned when an ActionKind value is not recognized.
	// It wraps ErrInvalidActionKind for errors.Is() compatibility.
	InvalidActionKindError struct {
		Value ActionKind
	}

	// Descriptor is the selection policy of one command. Descriptors are values and
	// are never mutated once registered.
	Descriptor struct {
		// Types lists the accepted value types; classify.All admits every entry.
		Types []classify.TypeTag
		// Prompt is shown when a key matches; it holds exactly one %s for the key.
		Prompt string
		// Action is the kind of action the command performs.
		Action ActionKind
		// Strict requires the key to name an eligible entry.
		Strict bool
	}

	// InvalidDescriptorError is returned when a Descriptor has invalid fields.
	// It wraps ErrInvalidDescriptor for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidDescriptorError struct {
		FieldErrors []error
	}
)

// String returns the action name.
func (a ActionKind) String() string { return string(a) }

// Validate returns an error if the action kind is not one of the known kinds.
func (a ActionKind) Validate() error {
	switch a {
	case ActionInsert, ActionJump, ActionView, ActionModify, ActionSet:
		return nil
	default:
		return &InvalidActionKindError{Value: a}
	}
}

// NeedsEntries reports whether the action can only operate on an existing entry.
// Such actions refuse to start when no entry is eligible, and they complete as soon
// as a key is typed when no preview pane is shown.
func (a ActionKind) NeedsEntries() bool {
	return a == ActionInsert || a == ActionJump || a == ActionView
}

// Message formats the prompt for key k.
func (d Descriptor) Message(k register.Key) string {
	return fmt.Sprintf(d.Prompt, k.String())
}

// AcceptsAll reports whether the descriptor admits every value type.
func (d Descriptor) AcceptsAll() bool {
	return classify.Accepts(d.Types, classify.All)
}

// Validate checks the descriptor fields and returns an InvalidDescriptorError
// collecting every problem found.
func (d Descriptor) Validate() error {
	var errs []error
	if len(d.Types) == 0 {
		errs = append(errs, errors.New("types: at least one type tag is required"))
	}
	for _, tag := range d.Types {
		if err := tag.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("types: %w", err))
		}
	}
	if n := strings.Count(d.Prompt, "%s"); n != 1 || strings.Count(d.Prompt, "%") != 1 {
		errs = append(errs, fmt.Errorf("prompt %q: must contain exactly one %%s placeholder", d.Prompt))
	}
	if err := d.Action.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidDescriptorError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidActionKindError.
func (e *InvalidActionKindError) Error() string {
	return fmt.Sprintf("invalid action kind %q (valid: insert, jump, view, modify, set)", string(e.Value))
}

// Unwrap returns ErrInvalidActionKind for errors.Is() compatibility.
func (e *InvalidActionKindError) Unwrap() error { return ErrInvalidActionKind }

// Error implements the error interface for InvalidDescriptorError.
func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("invalid descriptor: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidDescriptor for errors.Is() compatibility.
func (e *InvalidDescriptorError) Unwrap() error { return ErrInvalidDescriptor }
