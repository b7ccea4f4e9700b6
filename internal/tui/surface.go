// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"slices"
	"strings"

	"github.com/regview/regview/internal/preview"
)

const (
	selectedMarker = "> "
	plainMarker    = "  "
	emptyPaneText  = "no eligible entries"
)

// paneSurface is the preview.Surface drawn inside the picker view. All of its
// methods run on the Bubble Tea update goroutine, or before and after the program.
type paneSurface struct {
	styles    Styles
	border    BorderStyle
	maxHeight TerminalDimension

	lines       []preview.Line
	passive     bool
	visible     bool
	highlighted int
}

var _ preview.Surface = (*paneSurface)(nil)

func newPaneSurface(styles Styles, border BorderStyle, maxHeight TerminalDimension) *paneSurface {
	return &paneSurface{
		styles:      styles,
		border:      border,
		maxHeight:   maxHeight,
		highlighted: -1,
	}
}

// Show implements preview.Surface.
func (s *paneSurface) Show(lines []preview.Line, passive bool) {
	s.lines = slices.Clone(lines)
	s.passive = passive
	s.visible = true
	s.highlighted = -1
}

// Highlight implements preview.Surface.
func (s *paneSurface) Highlight(index int) { s.highlighted = index }

// ClearHighlight implements preview.Surface.
func (s *paneSurface) ClearHighlight() { s.highlighted = -1 }

// Hide implements preview.Surface.
func (s *paneSurface) Hide() {
	s.visible = false
	s.lines = nil
}

// View renders the pane within width columns and height rows; 0 means unknown.
func (s *paneSurface) View(width, height int) string {
	if !s.visible {
		return ""
	}

	var body string
	if len(s.lines) == 0 {
		body = s.styles.Empty.Render(emptyPaneText)
	} else {
		first, last := s.window(s.maxHeight.Resolve(height))
		rows := make([]string, 0, last-first)
		for i := first; i < last; i++ {
			rows = append(rows, s.row(i))
		}
		body = strings.Join(rows, "\n")
	}

	style := s.styles.Border
	if b, ok := s.border.Border(); ok {
		style = style.Border(b)
	}
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return style.Render(body)
}

// window returns the range of lines that fits in rows, keeping the highlighted
// line in view.
func (s *paneSurface) window(rows int) (int, int) {
	n := len(s.lines)
	if rows <= 0 || rows >= n {
		return 0, n
	}
	first := 0
	if s.highlighted >= rows {
		first = s.highlighted - rows + 1
	}
	return first, first + rows
}

func (s *paneSurface) row(i int) string {
	l := s.lines[i]
	text := s.styles.Key.Render(l.Key.String()) + ": " + l.Text
	switch {
	case s.passive:
		return plainMarker + s.styles.Passive.Render(l.String())
	case i == s.highlighted:
		return s.styles.Selected.Render(selectedMarker + l.String())
	default:
		return plainMarker + s.styles.Line.Render(text)
	}
}
