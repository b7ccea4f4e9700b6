// SPDX-License-Identifier: MPL-2.0

package session

import (
	"context"

	"github.com/regview/regview/internal/engine"
	"github.com/regview/regview/internal/preview"
)

const (
	// EventEdit is sent after the input line changed, or once per refresh tick
	// when edits are coalesced.
	EventEdit Event = iota
	// EventNext moves the pane cursor down.
	EventNext
	// EventPrevious moves the pane cursor up.
	EventPrevious
	// EventReveal opens the full pane on demand.
	EventReveal
	// EventSuggest puts the next unused default key in the input line.
	EventSuggest
	// EventSubmit is the host's accept action.
	EventSubmit
	// EventAbort is the host's abort gesture.
	EventAbort
)

type (
	// Event is an input event delivered by a host, serialized through its single
	// input channel.
	Event int

	// Handler consumes one event. It reports whether the session has ended, after
	// which the host must stop reading.
	Handler func(line engine.InputLine, ev Event) (done bool)

	// Request is what a session asks of the host's read loop.
	Request struct {
		Prompt string
		Handle Handler
	}

	// Host owns the input line and the display surface of a session.
	Host interface {
		// Surface returns the display the preview pane is drawn on.
		Surface() preview.Surface
		// Read runs the input loop until the handler reports done, the context
		// is cancelled, or the host fails. Only the last two return an error.
		Read(ctx context.Context, req Request) error
		// Nested reports whether a session may start while another is active.
		Nested() bool
	}
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventEdit:
		return "edit"
	case EventNext:
		return "next"
	case EventPrevious:
		return "previous"
	case EventReveal:
		return "reveal"
	case EventSuggest:
		return "suggest"
	case EventSubmit:
		return "submit"
	case EventAbort:
		return "abort"
	default:
		return "unknown"
	}
}
