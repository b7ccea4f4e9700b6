// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"slices"

	"github.com/regview/regview/internal/preview"
)

type (
	// RecordingSurface is a preview.Surface that records every call.
	RecordingSurface struct {
		Lines       []preview.Line
		Passive     bool
		Visible     bool
		Highlighted int
		ShowCalls   int
		HideCalls   int
	}

	// Line is an in-memory input line. Notices collects every transient message
	// in order.
	Line struct {
		Text    string
		Notices []string
	}
)

// NewRecordingSurface returns a hidden surface with no highlight.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{Highlighted: -1}
}

// Show implements preview.Surface.
func (s *RecordingSurface) Show(lines []preview.Line, passive bool) {
	s.Lines = slices.Clone(lines)
	s.Passive = passive
	s.Visible = true
	s.Highlighted = -1
	s.ShowCalls++
}

// Highlight implements preview.Surface.
func (s *RecordingSurface) Highlight(index int) { s.Highlighted = index }

// ClearHighlight implements preview.Surface.
func (s *RecordingSurface) ClearHighlight() { s.Highlighted = -1 }

// Hide implements preview.Surface.
func (s *RecordingSurface) Hide() {
	s.Visible = false
	s.HideCalls++
}

// Contents returns the current text.
func (l *Line) Contents() string { return l.Text }

// SetContents replaces the text.
func (l *Line) SetContents(s string) { l.Text = s }

// Notify records a transient message.
func (l *Line) Notify(msg string) { l.Notices = append(l.Notices, msg) }

// LastNotice returns the most recent message, or "".
func (l *Line) LastNotice() string {
	if len(l.Notices) == 0 {
		return ""
	}
	return l.Notices[len(l.Notices)-1]
}

// Type appends s to the line, like keystrokes arriving before the next refresh.
func (l *Line) Type(s string) *Line {
	l.Text += s
	return l
}
