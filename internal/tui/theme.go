// SPDX-License-Identifier: MPL-2.0

package tui

import "github.com/charmbracelet/lipgloss"

type (
	// palette is the set of colors a theme is built from.
	palette struct {
		primary   lipgloss.TerminalColor
		accent    lipgloss.TerminalColor
		muted     lipgloss.TerminalColor
		warning   lipgloss.TerminalColor
		highlight lipgloss.TerminalColor
	}

	// Styles are the lipgloss styles of the picker.
	Styles struct {
		Prompt    lipgloss.Style
		Notice    lipgloss.Style
		Key       lipgloss.Style
		Line      lipgloss.Style
		Selected  lipgloss.Style
		Passive   lipgloss.Style
		Empty     lipgloss.Style
		Border    lipgloss.Style
		HelpShort lipgloss.Style
	}
)

func (t Theme) palette() palette {
	switch t {
	case ThemeCharm:
		return palette{
			primary:   lipgloss.Color("#7571F9"),
			accent:    lipgloss.Color("#FF5F87"),
			muted:     lipgloss.Color("#6C6C6C"),
			warning:   lipgloss.Color("#FFAF00"),
			highlight: lipgloss.Color("#00D7AF"),
		}
	case ThemeDracula:
		return palette{
			primary:   lipgloss.Color("#BD93F9"),
			accent:    lipgloss.Color("#FF79C6"),
			muted:     lipgloss.Color("#6272A4"),
			warning:   lipgloss.Color("#FFB86C"),
			highlight: lipgloss.Color("#50FA7B"),
		}
	case ThemeCatppuccin:
		return palette{
			primary:   lipgloss.Color("#CBA6F7"),
			accent:    lipgloss.Color("#F5C2E7"),
			muted:     lipgloss.Color("#6C7086"),
			warning:   lipgloss.Color("#FAB387"),
			highlight: lipgloss.Color("#89B4FA"),
		}
	case ThemeBase16:
		return palette{
			primary:   lipgloss.Color("5"),
			accent:    lipgloss.Color("6"),
			muted:     lipgloss.Color("8"),
			warning:   lipgloss.Color("3"),
			highlight: lipgloss.Color("4"),
		}
	default:
		return palette{
			primary:   lipgloss.Color("#7C3AED"),
			accent:    lipgloss.Color("#10B981"),
			muted:     lipgloss.Color("#6B7280"),
			warning:   lipgloss.Color("#F59E0B"),
			highlight: lipgloss.Color("#3B82F6"),
		}
	}
}

// StylesFor returns the picker styles of theme t. Unknown themes get the
// default palette.
func StylesFor(t Theme) Styles {
	p := t.palette()
	return Styles{
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(p.primary),
		Notice:    lipgloss.NewStyle().Italic(true).Foreground(p.warning),
		Key:       lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Line:      lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(p.highlight),
		Passive:   lipgloss.NewStyle().Faint(true),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(p.muted),
		Border:    lipgloss.NewStyle().BorderForeground(p.muted),
		HelpShort: lipgloss.NewStyle().Foreground(p.muted),
	}
}
