// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/regview/regview/internal/descriptor"
	"github.com/regview/regview/internal/register"
)

type (
	// InputLine is the host's input line.
	InputLine interface {
		Contents() string
		SetContents(s string)
		// Notify shows a transient message without changing the contents.
		Notify(msg string)
	}

	// PaneView is the part of a preview pane the engine drives.
	// *preview.Pane satisfies it.
	PaneView interface {
		Interactive() bool
		Find(k register.Key) (int, bool)
		Highlight(index int)
		ClearHighlight()
	}

	// Params configures an Engine.
	Params struct {
		// Keys are the eligible keys in display order.
		Keys       []register.Key
		Descriptor descriptor.Descriptor
		// Pane is the preview pane, or nil when none was opened.
		Pane PaneView
		// NoConfirm completes the session on the first accepted key even when
		// the action would otherwise wait for an explicit submit.
		NoConfirm bool
		// ConfirmOnRepeat completes the session when the same key is typed twice.
		ConfirmOnRepeat bool
	}

	// Engine is the per-session input state machine. It is not safe for
	// concurrent use; a session feeds it from a single goroutine.
	Engine struct {
		params  Params
		pattern string
		state   State
		repeat  bool
		outcome Outcome
	}
)

// New creates an engine in StateEmpty.
func New(p Params) *Engine {
	p.Keys = slices.Clone(p.Keys)
	return &Engine{params: p}
}

// State returns the current logical state.
func (e *Engine) State() State { return e.state }

// Pattern returns the committed pattern, "" or one character.
func (e *Engine) Pattern() string { return e.pattern }

// Done reports whether the session has ended.
func (e *Engine) Done() bool { return e.state.Terminal() }

// Outcome returns how the session ended. It is meaningful once Done is true.
func (e *Engine) Outcome() Outcome { return e.outcome }

// SetPane replaces the pane the engine highlights, e.g. after an on-demand reveal.
func (e *Engine) SetPane(p PaneView) { e.params.Pane = p }

// Step reconciles the engine with the current contents of line. It is called
// after every edit, or once per refresh tick when edits are coalesced, and
// reports whether the session has ended.
func (e *Engine) Step(line InputLine) bool {
	if e.Done() {
		return true
	}

	p, ok := e.resolve(line)
	if !ok {
		return false
	}
	e.commit(p)

	if pane := e.params.Pane; pane != nil && pane.Interactive() {
		e.syncHighlight(pane, line)
	} else if p != "" {
		k := keyOf(p)
		action := e.params.Descriptor.Action
		switch {
		case e.eligible(p):
			line.Notify(e.params.Descriptor.Message(k))
			if action.NeedsEntries() || e.params.NoConfirm {
				e.confirm(k)
				return true
			}
		case action.NeedsEntries():
			line.Notify(EmptyEntryNotice(k))
		case action == descriptor.ActionSet && e.params.NoConfirm:
			// Set actions create the entry, so a fresh key is a valid target.
			line.Notify(e.params.Descriptor.Message(k))
			e.confirm(k)
			return true
		}
	}

	if e.repeat && p != "" {
		slog.Debug("confirming repeated key", "key", p)
		e.confirm(keyOf(p))
		return true
	}
	return false
}

// Submit handles the host's accept action: the line is reconciled first, then
// a non-empty pattern is confirmed. An empty pattern ends the session with a
// ValidationError.
func (e *Engine) Submit(line InputLine) bool {
	if e.Step(line) {
		return true
	}
	if e.pattern == "" {
		e.fail(&ValidationError{Reason: emptySubmitText})
		return true
	}
	e.confirm(keyOf(e.pattern))
	return true
}

// Abort ends the session with ErrAborted. It has no effect once the session
// has ended.
func (e *Engine) Abort() {
	if e.Done() {
		return
	}
	e.fail(ErrAborted)
}

// resolve implements overflow handling and the strict-match check. It returns
// false when the pattern was rejected.
func (e *Engine) resolve(line InputLine) (string, bool) {
	raw := []rune(line.Contents())
	p := string(raw)

	if len(raw) > 1 {
		previous, incoming := string(raw[0]), string(raw[len(raw)-1])
		if !e.params.Descriptor.Strict || e.eligible(incoming) {
			p = incoming
		} else {
			p = previous
		}
		if p == incoming && incoming == previous && e.params.ConfirmOnRepeat {
			e.repeat = true
		}
		line.SetContents(p)
	}

	if e.params.Descriptor.Strict && p != "" && !e.eligible(p) {
		slog.Debug("rejecting pattern", "pattern", p)
		e.pattern = ""
		e.state = StateNotMatching
		e.repeat = false
		line.SetContents("")
		line.Notify(NoticeNotMatching)
		return "", false
	}
	return p, true
}

func (e *Engine) commit(p string) {
	e.pattern = p
	if p == "" {
		e.state = StateEmpty
	} else {
		e.state = StatePrefix
	}
}

func (e *Engine) syncHighlight(pane PaneView, line InputLine) {
	pane.ClearHighlight()
	if e.pattern == "" {
		return
	}
	k := keyOf(e.pattern)
	if i, found := pane.Find(k); found {
		pane.Highlight(i)
		line.Notify(e.params.Descriptor.Message(k))
		return
	}
	line.Notify(EmptyEntryNotice(k))
}

func (e *Engine) eligible(p string) bool {
	return slices.Contains(e.params.Keys, keyOf(p))
}

func (e *Engine) confirm(k register.Key) {
	e.state = StateConfirmed
	e.outcome = Outcome{State: StateConfirmed, Key: k}
}

func (e *Engine) fail(err error) {
	e.state = StateAborted
	e.outcome = Outcome{State: StateAborted, Err: err}
}

// keyOf returns the key for a one-character pattern.
func keyOf(p string) register.Key {
	if p == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(p)
	return register.Key(r)
}
