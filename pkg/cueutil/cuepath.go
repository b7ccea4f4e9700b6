// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCUEPath is the sentinel error wrapped by InvalidCUEPathError.
var ErrInvalidCUEPath = errors.New("invalid CUE path")

type (
	// CUEPath is a user-facing path to a value in a CUE document, in JSON-path
	// notation (e.g. "entries[0].key").
	CUEPath string

	// InvalidCUEPathError is returned when a CUEPath is empty.
	// It wraps ErrInvalidCUEPath for errors.Is() compatibility.
	InvalidCUEPathError struct {
		Value CUEPath
	}
)

// String returns the path.
func (p CUEPath) String() string { return string(p) }

// Validate returns an error if the path is empty or whitespace.
func (p CUEPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return &InvalidCUEPathError{Value: p}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidCUEPathError) Error() string {
	return fmt.Sprintf("invalid CUE path %q: must not be empty", e.Value)
}

// Unwrap returns ErrInvalidCUEPath for errors.Is() compatibility.
func (e *InvalidCUEPathError) Unwrap() error { return ErrInvalidCUEPath }
