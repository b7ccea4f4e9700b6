// SPDX-License-Identifier: MPL-2.0

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/regview/regview/internal/descriptor"
	"github.com/regview/regview/internal/engine"
	"github.com/regview/regview/internal/filter"
	"github.com/regview/regview/internal/preview"
	"github.com/regview/regview/internal/register"
)

// ErrSessionActive is returned by Start while another session is running on the
// same Orchestrator and the host does not support nesting.
var ErrSessionActive = errors.New("a session is already active")

type (
	// Orchestrator runs picking sessions against one store and one host.
	Orchestrator struct {
		store      register.Store
		registry   *descriptor.Registry
		classifier filter.Classifier
		host       Host
		opts       Options

		mu     sync.Mutex
		active int
		// panes holds the pane of every running session, innermost last.
		panes []*preview.Pane
	}

	// session is the state of one Start call.
	session struct {
		opts       Options
		desc       descriptor.Descriptor
		entries    []register.Entry
		store      register.Store
		renderer   preview.Renderer
		pane       *preview.Pane
		engine     *engine.Engine
		navigator  preview.Navigator
		suggestion int
	}
)

// NewOrchestrator creates an Orchestrator. An invalid preview mode falls back to
// ModeAlways.
func NewOrchestrator(store register.Store, registry *descriptor.Registry, classifier filter.Classifier, host Host, opts Options) *Orchestrator {
	if err := opts.Mode.Validate(); err != nil {
		slog.Warn("using default preview mode", "error", err)
		opts.Mode = ModeAlways
	}
	return &Orchestrator{
		store:      store,
		registry:   registry,
		classifier: classifier,
		host:       host,
		opts:       opts,
	}
}

// Start reads one entry key for the command id. It returns the confirmed key,
// ErrSessionActive, a *engine.ValidationError, engine.ErrAborted, or the host's
// read error. Any pane opened by the session is closed before Start returns; a
// nested session then redraws the enclosing session's pane.
func (o *Orchestrator) Start(ctx context.Context, id descriptor.CommandID, prompt string) (register.Key, error) {
	if err := o.enter(); err != nil {
		return 0, err
	}
	defer o.leave()

	d := o.registry.Lookup(id)
	entries := filter.Entries(o.store, d.Types, o.classifier)
	keys := filter.Keys(entries)
	if err := engine.CheckEligible(d, keys); err != nil {
		return 0, err
	}
	if prompt == "" {
		prompt = DefaultPrompt
	}

	s := &session{
		opts:      o.opts,
		desc:      d,
		entries:   entries,
		store:     o.store,
		renderer:  preview.Renderer{Store: o.store, Describe: o.opts.Describe, Width: o.opts.Width},
		navigator: preview.Navigator{Unattended: o.opts.Unattended},
	}
	surface := o.host.Surface()
	if o.opts.Mode == ModeQuickOnly {
		s.pane = preview.NewPassivePane(surface)
	} else {
		s.pane = preview.NewPane(surface)
	}
	o.push(s.pane)
	defer o.pop(s.pane)

	if o.opts.Mode.opensPane() {
		s.renderer.Open(s.pane, entries, false)
	}
	s.engine = engine.New(engine.Params{
		Keys:            keys,
		Descriptor:      d,
		Pane:            s.pane,
		NoConfirm:       o.opts.Mode.noConfirm(),
		ConfirmOnRepeat: o.opts.Mode == ModeConfirmOnRepeat,
	})

	slog.Debug("session started", "command", string(id), "mode", o.opts.Mode.String(),
		"eligible", len(keys), "pane", s.pane.IsOpen())

	if err := o.host.Read(ctx, Request{Prompt: prompt, Handle: s.handle}); err != nil {
		slog.Debug("session interrupted", "command", string(id), "error", err)
		return 0, fmt.Errorf("reading entry key: %w", err)
	}
	if !s.engine.Done() {
		s.engine.Abort()
	}

	outcome := s.engine.Outcome()
	slog.Debug("session ended", "command", string(id), "state", outcome.State.String())
	return outcome.Result()
}

func (o *Orchestrator) enter() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.active > 0 && !o.host.Nested() {
		return ErrSessionActive
	}
	o.active++
	return nil
}

func (o *Orchestrator) leave() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.active--
}

func (o *Orchestrator) push(p *preview.Pane) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.panes = append(o.panes, p)
}

// pop closes p and hands the shared surface back to the enclosing session's
// pane, if any.
func (o *Orchestrator) pop(p *preview.Pane) {
	p.Close()

	o.mu.Lock()
	if i := slices.Index(o.panes, p); i >= 0 {
		o.panes = slices.Delete(o.panes, i, i+1)
	}
	var outer *preview.Pane
	if n := len(o.panes); n > 0 {
		outer = o.panes[n-1]
	}
	o.mu.Unlock()

	if outer != nil {
		outer.Redraw()
	}
}

func (s *session) handle(line engine.InputLine, ev Event) bool {
	switch ev {
	case EventEdit:
		return s.engine.Step(line)
	case EventNext:
		if s.navigator.Next(s.pane, line) {
			return s.engine.Step(line)
		}
	case EventPrevious:
		if s.navigator.Previous(s.pane, line) {
			return s.engine.Step(line)
		}
	case EventReveal:
		if s.reveal() {
			return s.engine.Step(line)
		}
	case EventSuggest:
		if s.suggest(line) {
			return s.engine.Step(line)
		}
	case EventSubmit:
		return s.engine.Submit(line)
	case EventAbort:
		s.engine.Abort()
		return true
	}
	return false
}

// reveal opens the full pane, showing it even when no entry is eligible.
func (s *session) reveal() bool {
	if s.opts.Unattended || s.opts.Mode == ModeQuickOnly || s.pane.IsOpen() {
		return false
	}
	if !s.renderer.Open(s.pane, s.entries, true) {
		return false
	}
	slog.Debug("pane revealed", "lines", len(s.pane.Lines()))
	return true
}

// suggest writes the next unused default key into the line, cycling through the
// candidates on repeated calls.
func (s *session) suggest(line engine.InputLine) bool {
	if s.desc.Action != descriptor.ActionSet {
		return false
	}
	candidates := register.UnusedKeys(s.store, s.opts.DefaultKeys)
	if len(candidates) == 0 {
		return false
	}
	k := candidates[s.suggestion%len(candidates)]
	s.suggestion++
	line.SetContents(k.String())
	return true
}
