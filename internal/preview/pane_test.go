// SPDX-License-Identifier: MPL-2.0

package preview_test

import (
	"testing"

	"github.com/regview/regview/internal/preview"
	"github.com/regview/regview/internal/testutil"
)

func sampleLines() []preview.Line {
	return []preview.Line{
		{Key: 'a', Text: "text: alpha"},
		{Key: 'b', Text: "number: 2"},
		{Key: 'c', Text: "buffer notes"},
	}
}

func TestPaneShowAndClose(t *testing.T) {
	t.Parallel()

	surface := testutil.NewRecordingSurface()
	p := preview.NewPane(surface)

	if p.IsOpen() {
		t.Fatal("new pane should be closed")
	}
	if !p.Show(sampleLines()) {
		t.Fatal("Show() on fresh pane = false")
	}
	if !p.IsOpen() || !p.Interactive() {
		t.Fatal("shown pane should be open and interactive")
	}
	if !surface.Visible || surface.Passive || len(surface.Lines) != 3 {
		t.Fatalf("surface = %+v, want visible non-passive with 3 lines", surface)
	}

	p.Close()
	p.Close()
	if surface.HideCalls != 1 {
		t.Errorf("HideCalls = %d, want 1", surface.HideCalls)
	}
	if p.IsOpen() {
		t.Error("closed pane reports open")
	}
	if p.Show(sampleLines()) {
		t.Error("Show() after Close() = true, want false")
	}
	if surface.ShowCalls != 1 {
		t.Errorf("ShowCalls = %d, want 1", surface.ShowCalls)
	}
}

func TestPaneCloseNeverOpened(t *testing.T) {
	t.Parallel()

	surface := testutil.NewRecordingSurface()
	p := preview.NewPane(surface)
	p.Close()
	if surface.HideCalls != 0 {
		t.Errorf("HideCalls = %d, want 0 for a pane that was never shown", surface.HideCalls)
	}

	var nilPane *preview.Pane
	nilPane.Close()
	if nilPane.IsOpen() {
		t.Error("nil pane reports open")
	}
}

func TestPaneHighlight(t *testing.T) {
	t.Parallel()

	surface := testutil.NewRecordingSurface()
	p := preview.NewPane(surface)
	p.Show(sampleLines())

	if _, ok := p.Cursor(); ok {
		t.Fatal("fresh pane has a cursor")
	}
	p.Highlight(1)
	if cur, ok := p.Cursor(); !ok || cur != 1 || surface.Highlighted != 1 {
		t.Fatalf("after Highlight(1): cursor=%d ok=%v surface=%d", cur, ok, surface.Highlighted)
	}
	p.Highlight(7)
	if cur, _ := p.Cursor(); cur != 1 {
		t.Errorf("out-of-range Highlight moved cursor to %d", cur)
	}
	p.ClearHighlight()
	if _, ok := p.Cursor(); ok || surface.Highlighted != -1 {
		t.Error("ClearHighlight() left a cursor")
	}

	p.Highlight(2)
	p.Show(sampleLines()[:1])
	if _, ok := p.Cursor(); ok {
		t.Error("Show() should reset the cursor")
	}
}

func TestPaneRedraw(t *testing.T) {
	t.Parallel()

	surface := testutil.NewRecordingSurface()
	outer := preview.NewPane(surface)
	outer.Show(sampleLines())
	outer.Highlight(1)

	inner := preview.NewPane(surface)
	inner.Show(sampleLines()[:1])
	inner.Close()

	outer.Redraw()
	if !surface.Visible || len(surface.Lines) != 3 || surface.Highlighted != 1 {
		t.Fatalf("surface = %+v, want the outer lines with line 1 highlighted", surface)
	}

	outer.Close()
	shows := surface.ShowCalls
	outer.Redraw()
	if surface.ShowCalls != shows || surface.Visible {
		t.Error("Redraw() drew a closed pane")
	}
}

func TestPassivePane(t *testing.T) {
	t.Parallel()

	surface := testutil.NewRecordingSurface()
	p := preview.NewPassivePane(surface)
	p.Show(sampleLines())

	if !p.IsOpen() || p.Interactive() || !p.Passive() {
		t.Fatalf("passive pane: open=%v interactive=%v passive=%v", p.IsOpen(), p.Interactive(), p.Passive())
	}
	if !surface.Passive {
		t.Error("surface was not told the pane is passive")
	}
	p.Highlight(0)
	if _, ok := p.Cursor(); ok {
		t.Error("passive pane accepted a highlight")
	}
}

func TestPaneFind(t *testing.T) {
	t.Parallel()

	p := preview.NewPane(testutil.NewRecordingSurface())
	p.Show(sampleLines())

	if i, ok := p.Find('c'); !ok || i != 2 {
		t.Errorf("Find('c') = %d, %v; want 2, true", i, ok)
	}
	if _, ok := p.Find('z'); ok {
		t.Error("Find('z') found a line")
	}
}

func TestLineString(t *testing.T) {
	t.Parallel()

	l := preview.Line{Key: 'q', Text: "number: 4"}
	if got := l.String(); got != "q: number: 4" {
		t.Errorf("String() = %q", got)
	}
}
