// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/regview/regview/internal/engine"
	"github.com/regview/regview/internal/keymap"
	"github.com/regview/regview/internal/preview"
	"github.com/regview/regview/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

type recordedEvent struct {
	event    session.Event
	contents string
}

// recorder is a session.Handler that ends the session on submit or abort.
type recorder struct {
	events []recordedEvent
	notify string
}

func (r *recorder) handle(line engine.InputLine, ev session.Event) bool {
	r.events = append(r.events, recordedEvent{ev, line.Contents()})
	if r.notify != "" {
		line.Notify(r.notify)
	}
	return ev == session.EventSubmit || ev == session.EventAbort
}

func newTestModel(r *recorder, interval time.Duration) *pickerModel {
	opts := DefaultHostOptions()
	opts.RefreshInterval = interval
	surface := newPaneSurface(StylesFor(ThemeDefault), BorderNone, 0)
	return newPickerModel(session.Request{Prompt: "Entry: ", Handle: r.handle}, surface, opts)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestPickerDispatchesEdits(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	m := newTestModel(r, 0)

	m.Update(runes("a"))
	if len(r.events) != 1 || r.events[0] != (recordedEvent{session.EventEdit, "a"}) {
		t.Fatalf("events = %+v", r.events)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(r.events) != 2 || r.events[1].event != session.EventSubmit {
		t.Fatalf("events = %+v", r.events)
	}
	if !isQuit(cmd) {
		t.Error("submit did not quit the program")
	}
	if m.View() != "" {
		t.Error("finished picker still renders")
	}
}

func TestPickerKeymapEvents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		msg  tea.KeyMsg
		want session.Event
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, session.EventNext},
		{tea.KeyMsg{Type: tea.KeyUp}, session.EventPrevious},
		{tea.KeyMsg{Type: tea.KeyF1}, session.EventReveal},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}, Alt: true}, session.EventSuggest},
		{tea.KeyMsg{Type: tea.KeyEsc}, session.EventAbort},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			t.Parallel()

			r := &recorder{}
			m := newTestModel(r, 0)
			m.Update(tt.msg)
			if len(r.events) != 1 || r.events[0].event != tt.want {
				t.Errorf("events = %+v, want one %v", r.events, tt.want)
			}
			if m.Contents() != "" {
				t.Errorf("bound key reached the input line: %q", m.Contents())
			}
		})
	}
}

func TestPickerCoalescesEdits(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	m := newTestModel(r, 30*time.Millisecond)

	m.Update(runes("a"))
	m.Update(runes("b"))
	if len(r.events) != 0 {
		t.Fatalf("edits dispatched before the tick: %+v", r.events)
	}

	_, cmd := m.Update(refreshMsg(time.Now()))
	if len(r.events) != 1 || r.events[0] != (recordedEvent{session.EventEdit, "ab"}) {
		t.Fatalf("events = %+v, want one edit with the burst", r.events)
	}
	if cmd == nil {
		t.Error("tick was not re-armed")
	}

	m.Update(refreshMsg(time.Now()))
	if len(r.events) != 1 {
		t.Errorf("idle tick dispatched an edit: %+v", r.events)
	}
}

func TestPickerFlushesBeforeBoundKey(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	m := newTestModel(r, time.Second)
	m.Update(runes("a"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(r.events) != 2 || r.events[0].event != session.EventEdit || r.events[1].event != session.EventSubmit {
		t.Errorf("events = %+v, want edit then submit", r.events)
	}
}

func TestPickerNotice(t *testing.T) {
	t.Parallel()

	r := &recorder{notify: "Not matching"}
	m := newTestModel(r, 0)
	m.Update(runes("z"))
	if !strings.Contains(m.View(), "Not matching") {
		t.Fatalf("View() lacks notice:\n%s", m.View())
	}

	r.notify = ""
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if strings.Contains(m.View(), "Not matching") {
		t.Error("notice survived the next key press")
	}
}

func TestPickerSetContents(t *testing.T) {
	t.Parallel()

	m := newTestModel(&recorder{}, 0)
	m.SetContents("q")
	if m.Contents() != "q" {
		t.Errorf("Contents() = %q", m.Contents())
	}
}

func TestPickerViewPanePosition(t *testing.T) {
	t.Parallel()

	for _, pos := range []PanePosition{PaneBottom, PaneTop} {
		m := newTestModel(&recorder{}, 0)
		m.position = pos
		m.surface.Show([]preview.Line{{Key: 'a', Text: "text: hello"}}, false)

		view := m.View()
		paneAt := strings.Index(view, "text: hello")
		promptAt := strings.Index(view, "Entry: ")
		if paneAt < 0 || promptAt < 0 {
			t.Fatalf("%s: view lacks pane or prompt:\n%s", pos, view)
		}
		if (pos == PaneTop) != (paneAt < promptAt) {
			t.Errorf("%s: pane at %d, prompt at %d", pos, paneAt, promptAt)
		}
	}
}

func TestPickerHelpUsesKeymap(t *testing.T) {
	t.Parallel()

	m := newTestModel(&recorder{}, 0)
	km, err := keymap.New(keymap.Bindings{Submit: []string{"ctrl+s"}})
	if err != nil {
		t.Fatal(err)
	}
	m.keymap = km
	if !strings.Contains(m.View(), "ctrl+s") {
		t.Errorf("help line does not show the configured submit key:\n%s", m.View())
	}
}
