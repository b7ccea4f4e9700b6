// SPDX-License-Identifier: MPL-2.0

package preview

import (
	"log/slog"
	"unicode/utf8"

	"github.com/regview/regview/internal/register"

	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

type (
	// Describer turns an entry value into a one-line description.
	Describer func(v any) string

	// Renderer lists entries in a pane, one line per entry.
	Renderer struct {
		// Store is re-read at render time so entries removed since the
		// snapshot are skipped.
		Store register.Store
		// Describe formats values; nil means register.Describe.
		Describe Describer
		// Width truncates lines to this many cells; 0 disables truncation.
		Width int
	}
)

// Open renders entries into p. Entries whose key no longer resolves are skipped
// silently. When nothing is left to show and forceShowEmpty is false the pane stays
// closed, and Open returns false.
func (r Renderer) Open(p *Pane, entries []register.Entry, forceShowEmpty bool) bool {
	lines := r.Lines(entries)
	if len(lines) == 0 && !forceShowEmpty {
		return false
	}
	return p.Show(lines)
}

// Lines renders entries without opening a pane.
func (r Renderer) Lines(entries []register.Entry) []Line {
	describe := r.Describe
	if describe == nil {
		describe = register.Describe
	}
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		v, ok := r.Store.Get(e.Key)
		if !ok {
			slog.Debug("skipping entry removed since snapshot", "key", e.Key.String())
			continue
		}
		lines = append(lines, Line{Key: e.Key, Text: r.fit(e.Key, describe(v))})
	}
	return lines
}

// fit truncates text so "<key>: <text>" fits in Width cells.
func (r Renderer) fit(k register.Key, text string) string {
	if r.Width <= 0 {
		return text
	}
	room := r.Width - utf8.RuneCountInString(k.String()) - len(": ")
	if room <= 0 {
		return ""
	}
	return truncate.StringWithTail(text, uint(room), ellipsis)
}
