// SPDX-License-Identifier: MPL-2.0

package preview

type (
	// KeyWriter is the input line as seen by navigation: the selected key replaces
	// its whole contents.
	KeyWriter interface {
		SetContents(s string)
	}

	// Navigator moves the pane cursor and feeds the selected key back to the input line.
	Navigator struct {
		// Unattended disables navigation during scripted or replayed input.
		Unattended bool
	}
)

// Next moves the cursor down, starting at the first line and wrapping past the last.
// It reports whether the cursor moved.
func (n Navigator) Next(p *Pane, w KeyWriter) bool {
	return n.move(p, w, 1)
}

// Previous moves the cursor up, starting at the last line and wrapping past the first.
// It reports whether the cursor moved.
func (n Navigator) Previous(p *Pane, w KeyWriter) bool {
	return n.move(p, w, -1)
}

func (n Navigator) move(p *Pane, w KeyWriter, delta int) bool {
	if n.Unattended || !p.Interactive() {
		return false
	}
	count := len(p.lines)
	if count == 0 {
		return false
	}

	var target int
	if cur, ok := p.Cursor(); ok {
		target = ((cur+delta)%count + count) % count
	} else if delta > 0 {
		target = 0
	} else {
		target = count - 1
	}

	p.Highlight(target)
	w.SetContents(p.lines[target].Key.String())
	return true
}
