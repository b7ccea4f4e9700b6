// SPDX-License-Identifier: MPL-2.0

package engine

import "github.com/regview/regview/internal/register"

const (
	// StateEmpty means no pattern is committed.
	StateEmpty State = iota
	// StatePrefix means a one-character pattern is committed.
	StatePrefix
	// StateConfirmed ends the session with the committed key.
	StateConfirmed
	// StateAborted ends the session without a key.
	StateAborted
	// StateNotMatching is transient: the last pattern was rejected and cleared.
	StateNotMatching
)

type (
	// State is the logical state of an engine.
	State int

	// Outcome is how a session ended.
	Outcome struct {
		State State
		// Key is set when State is StateConfirmed.
		Key register.Key
		// Err is set when State is StateAborted.
		Err error
	}
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePrefix:
		return "prefix"
	case StateConfirmed:
		return "confirmed"
	case StateAborted:
		return "aborted"
	case StateNotMatching:
		return "not-matching"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends the session.
func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateAborted
}

// Result returns the confirmed key, or the error that ended the session.
func (o Outcome) Result() (register.Key, error) {
	if o.State == StateConfirmed {
		return o.Key, nil
	}
	if o.Err != nil {
		return 0, o.Err
	}
	return 0, ErrAborted
}
