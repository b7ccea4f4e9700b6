// SPDX-License-Identifier: MPL-2.0

package preview

import (
	"slices"

	"github.com/regview/regview/internal/register"
)

type (
	// Line is one rendered pane line: an entry key and its one-line description.
	Line struct {
		Key  register.Key
		Text string
	}

	// Surface is the host display a Pane draws on.
	Surface interface {
		// Show displays lines. A passive pane is listed without a cursor.
		Show(lines []Line, passive bool)
		// Highlight marks the line at index as selected.
		Highlight(index int)
		// ClearHighlight removes any line mark.
		ClearHighlight()
		// Hide removes the pane from the display and releases it.
		Hide()
	}

	// Pane tracks the lifecycle and cursor of one preview pane.
	Pane struct {
		surface Surface
		passive bool
		lines   []Line
		cursor  int
		open    bool
		closed  bool
	}
)

// String renders the line as "<key>: <text>".
func (l Line) String() string {
	return l.Key.String() + ": " + l.Text
}

// NewPane returns a closed, navigable pane drawing on s.
func NewPane(s Surface) *Pane {
	return &Pane{surface: s, cursor: -1}
}

// NewPassivePane returns a closed pane that lists entries but never shows a cursor
// and is ignored by navigation and highlighting.
func NewPassivePane(s Surface) *Pane {
	return &Pane{surface: s, cursor: -1, passive: true}
}

// Show opens the pane with lines, replacing any previous contents and cursor.
// It returns false once the pane has been closed.
func (p *Pane) Show(lines []Line) bool {
	if p.closed {
		return false
	}
	p.lines = slices.Clone(lines)
	p.cursor = -1
	p.open = true
	p.surface.Show(p.Lines(), p.passive)
	return true
}

// IsOpen reports whether the pane is currently displayed.
func (p *Pane) IsOpen() bool {
	return p != nil && p.open
}

// Interactive reports whether the pane is displayed and accepts a cursor.
func (p *Pane) Interactive() bool {
	return p.IsOpen() && !p.passive
}

// Passive reports whether the pane was created passive.
func (p *Pane) Passive() bool {
	return p != nil && p.passive
}

// Lines returns a copy of the rendered lines.
func (p *Pane) Lines() []Line {
	return slices.Clone(p.lines)
}

// Find returns the index of the line for key k.
func (p *Pane) Find(k register.Key) (int, bool) {
	i := slices.IndexFunc(p.lines, func(l Line) bool { return l.Key == k })
	return i, i >= 0
}

// Cursor returns the highlighted line index, if any.
func (p *Pane) Cursor() (int, bool) {
	return p.cursor, p.cursor >= 0
}

// Highlight moves the cursor to index. Out-of-range indexes and passive or closed
// panes are ignored.
func (p *Pane) Highlight(index int) {
	if !p.Interactive() || index < 0 || index >= len(p.lines) {
		return
	}
	p.cursor = index
	p.surface.Highlight(index)
}

// ClearHighlight removes the cursor.
func (p *Pane) ClearHighlight() {
	if !p.Interactive() {
		return
	}
	p.cursor = -1
	p.surface.ClearHighlight()
}

// Redraw shows the pane's lines and cursor on its surface again, after another
// pane drew over the same surface. Closed or unopened panes are left alone.
func (p *Pane) Redraw() {
	if !p.IsOpen() {
		return
	}
	p.surface.Show(p.Lines(), p.passive)
	if p.cursor >= 0 {
		p.surface.Highlight(p.cursor)
	}
}

// Close hides the pane. It is safe to call on a pane that was never opened and
// any number of times; the surface is hidden at most once.
func (p *Pane) Close() {
	if p == nil || p.closed {
		return
	}
	p.closed = true
	if !p.open {
		return
	}
	p.open = false
	p.cursor = -1
	p.surface.Hide()
}
