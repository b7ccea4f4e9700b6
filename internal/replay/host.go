// SPDX-License-Identifier: MPL-2.0

package replay

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/regview/regview/internal/keymap"
	"github.com/regview/regview/internal/preview"
	"github.com/regview/regview/internal/session"
)

type (
	// Host is a session.Host that plays a key script.
	Host struct {
		tokens  []Token
		pos     int
		keymap  keymap.Keymap
		out     io.Writer
		surface *Surface
		line    *Line
	}

	// Line is the replay input line. Notices are kept in order and echoed to the
	// host's writer.
	Line struct {
		text    []rune
		notices []string
		out     io.Writer
	}

	// Surface records the pane state and echoes shown panes to the host's writer.
	Surface struct {
		lines       []preview.Line
		passive     bool
		visible     bool
		highlighted int
		out         io.Writer
	}
)

var _ session.Host = (*Host)(nil)

// NewHost parses script and checks every named key against km. Notices and
// shown panes are written to out; a nil out discards them.
func NewHost(script string, km keymap.Keymap, out io.Writer) (*Host, error) {
	tokens, err := Parse(script)
	if err != nil {
		return nil, err
	}
	for _, tok := range tokens {
		if !tok.Named() || tok.Name == KeyBackspace {
			continue
		}
		if _, ok := km.Lookup(tok.Name); !ok {
			return nil, &InvalidScriptError{Offset: tok.Offset, Reason: fmt.Sprintf("unbound key %s", tok)}
		}
	}
	if out == nil {
		out = io.Discard
	}
	return &Host{
		tokens:  tokens,
		keymap:  km,
		out:     out,
		surface: &Surface{highlighted: -1, out: out},
	}, nil
}

// Surface implements session.Host.
func (h *Host) Surface() preview.Surface { return h.surface }

// Nested implements session.Host.
func (h *Host) Nested() bool { return false }

// Pane returns the recording surface.
func (h *Host) Pane() *Surface { return h.surface }

// Line returns the input line of the last Read, or nil.
func (h *Host) Line() *Line { return h.line }

// Remaining returns the number of tokens not yet played.
func (h *Host) Remaining() int { return len(h.tokens) - h.pos }

// Read plays tokens until the handler reports done or the script runs out.
// A later Read continues where the previous one stopped.
func (h *Host) Read(ctx context.Context, req session.Request) error {
	h.line = &Line{out: h.out}
	for h.pos < len(h.tokens) {
		if err := ctx.Err(); err != nil {
			return err
		}
		tok := h.tokens[h.pos]
		h.pos++

		ev := session.EventEdit
		switch {
		case !tok.Named():
			h.line.text = append(h.line.text, tok.Char)
		case tok.Name == KeyBackspace:
			if n := len(h.line.text); n > 0 {
				h.line.text = h.line.text[:n-1]
			}
		default:
			ev, _ = h.keymap.Lookup(tok.Name)
		}

		if req.Handle(h.line, ev) {
			return nil
		}
	}
	slog.Debug("key script exhausted", "prompt", req.Prompt)
	return nil
}

// Contents implements engine.InputLine.
func (l *Line) Contents() string { return string(l.text) }

// SetContents implements engine.InputLine.
func (l *Line) SetContents(s string) { l.text = []rune(s) }

// Notify implements engine.InputLine.
func (l *Line) Notify(msg string) {
	l.notices = append(l.notices, msg)
	fmt.Fprintln(l.out, msg)
}

// Notices returns every notice shown on the line.
func (l *Line) Notices() []string { return slices.Clone(l.notices) }

// Show implements preview.Surface.
func (s *Surface) Show(lines []preview.Line, passive bool) {
	s.lines = slices.Clone(lines)
	s.passive = passive
	s.visible = true
	s.highlighted = -1
	for _, l := range lines {
		fmt.Fprintf(s.out, "  %s\n", l)
	}
}

// Highlight implements preview.Surface.
func (s *Surface) Highlight(index int) { s.highlighted = index }

// ClearHighlight implements preview.Surface.
func (s *Surface) ClearHighlight() { s.highlighted = -1 }

// Hide implements preview.Surface.
func (s *Surface) Hide() { s.visible = false }

// Lines returns the lines of the last shown pane.
func (s *Surface) Lines() []preview.Line { return slices.Clone(s.lines) }

// Visible reports whether the pane is shown.
func (s *Surface) Visible() bool { return s.visible }

// Passive reports whether the last shown pane was passive.
func (s *Surface) Passive() bool { return s.passive }

// Highlighted returns the highlighted line index, or -1.
func (s *Surface) Highlighted() int { return s.highlighted }
