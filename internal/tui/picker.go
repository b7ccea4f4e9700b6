// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"time"

	"github.com/regview/regview/internal/engine"
	"github.com/regview/regview/internal/keymap"
	"github.com/regview/regview/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chromeRows is the number of rows used by the prompt, notice and help lines.
const chromeRows = 3

type (
	// refreshMsg is delivered by the coalescing timer.
	refreshMsg time.Time

	// pickerModel is the Bubble Tea model of one session read. It is also the
	// session's engine.InputLine.
	pickerModel struct {
		input    textinput.Model
		help     help.Model
		keymap   keymap.Keymap
		surface  *paneSurface
		styles   Styles
		position PanePosition
		handle   session.Handler
		interval time.Duration

		notice string
		dirty  bool
		done   bool
		width  int
		height int
	}
)

var _ engine.InputLine = (*pickerModel)(nil)

func newPickerModel(req session.Request, surface *paneSurface, opts HostOptions) *pickerModel {
	styles := StylesFor(opts.Config.Theme)

	input := textinput.New()
	input.Prompt = req.Prompt
	input.PromptStyle = styles.Prompt
	input.Focus()

	h := help.New()
	h.Styles.ShortKey = styles.HelpShort
	h.Styles.ShortDesc = styles.HelpShort

	return &pickerModel{
		input:    input,
		help:     h,
		keymap:   opts.Keymap,
		surface:  surface,
		styles:   styles,
		position: opts.Position,
		handle:   req.Handle,
		interval: opts.RefreshInterval,
		width:    int(opts.Config.Width),
	}
}

// Init implements tea.Model.
func (m *pickerModel) Init() tea.Cmd {
	if m.interval > 0 {
		return tea.Batch(textinput.Blink, m.tick())
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case refreshMsg:
		m.flush()
		if m.done {
			return m, tea.Quit
		}
		return m, m.tick()

	case tea.KeyMsg:
		m.notice = ""
		if ev, ok := m.keymap.Lookup(msg.String()); ok {
			m.flush()
			if !m.done {
				m.dispatch(ev)
			}
			if m.done {
				return m, tea.Quit
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			if m.interval > 0 {
				m.dirty = true
			} else {
				m.dispatch(session.EventEdit)
			}
		}
		if m.done {
			return m, tea.Quit
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *pickerModel) View() string {
	if m.done {
		return ""
	}

	parts := []string{m.input.View()}
	if m.notice != "" {
		parts = append(parts, m.styles.Notice.Render(m.notice))
	}
	if pane := m.surface.View(m.width, m.paneRows()); pane != "" {
		if m.position == PaneTop {
			parts = append([]string{pane}, parts...)
		} else {
			parts = append(parts, pane)
		}
	}
	parts = append(parts, m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Contents implements engine.InputLine.
func (m *pickerModel) Contents() string { return m.input.Value() }

// SetContents implements engine.InputLine.
func (m *pickerModel) SetContents(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// Notify implements engine.InputLine. The notice is cleared by the next key press.
func (m *pickerModel) Notify(msg string) { m.notice = msg }

func (m *pickerModel) dispatch(ev session.Event) {
	if m.handle(m, ev) {
		m.done = true
	}
}

// flush dispatches the edit held back by the coalescing timer, if any.
func (m *pickerModel) flush() {
	if !m.dirty {
		return
	}
	m.dirty = false
	m.dispatch(session.EventEdit)
}

func (m *pickerModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

// paneRows is the height left for the pane, or 0 when the screen size is unknown.
func (m *pickerModel) paneRows() int {
	if m.height == 0 {
		return 0
	}
	// Two rows for the border.
	return max(m.height-chromeRows-2, 1)
}
