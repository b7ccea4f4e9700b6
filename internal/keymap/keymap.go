// SPDX-License-Identifier: MPL-2.0

package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/regview/regview/internal/session"

	"github.com/charmbracelet/bubbles/key"
)

var (
	// ErrKeyConflict is the sentinel error wrapped by KeyConflictError.
	ErrKeyConflict = errors.New("key bound to more than one action")
	// ErrPrintableKey is the sentinel error wrapped by PrintableKeyError.
	ErrPrintableKey = errors.New("printable character bound to an action")
)

type (
	// Bindings lists key names per action. An empty list keeps the default keys.
	Bindings struct {
		Next     []string
		Previous []string
		Reveal   []string
		Suggest  []string
		Submit   []string
		Abort    []string
	}

	// Keymap holds the key bindings of a picking session. It implements
	// help.KeyMap.
	Keymap struct {
		Next     key.Binding
		Previous key.Binding
		Reveal   key.Binding
		Suggest  key.Binding
		Submit   key.Binding
		Abort    key.Binding
	}

	// KeyConflictError is returned when one key name is bound to two actions.
	// It wraps ErrKeyConflict for errors.Is() compatibility.
	KeyConflictError struct {
		Key     string
		Actions [2]string
	}

	// PrintableKeyError is returned when an action is bound to a single printable
	// character, which could then no longer be typed as an entry key.
	PrintableKeyError struct {
		Key    string
		Action string
	}

	binding struct {
		action string
		event  session.Event
		b      *key.Binding
	}
)

// DefaultBindings returns the default key names.
func DefaultBindings() Bindings {
	return Bindings{
		Next:     []string{"down", "ctrl+n"},
		Previous: []string{"up", "ctrl+p"},
		Reveal:   []string{"f1", "ctrl+r"},
		Suggest:  []string{"alt+n", "tab"},
		Submit:   []string{"enter"},
		Abort:    []string{"esc", "ctrl+c", "ctrl+g"},
	}
}

// Default returns the key map for DefaultBindings.
func Default() Keymap {
	m, _ := New(Bindings{})
	return m
}

// New builds a key map, falling back to the default keys for every action left
// empty in b.
func New(b Bindings) (Keymap, error) {
	def := DefaultBindings()
	m := Keymap{
		Next:     newBinding(b.Next, def.Next, "next"),
		Previous: newBinding(b.Previous, def.Previous, "previous"),
		Reveal:   newBinding(b.Reveal, def.Reveal, "preview"),
		Suggest:  newBinding(b.Suggest, def.Suggest, "suggest"),
		Submit:   newBinding(b.Submit, def.Submit, "select"),
		Abort:    newBinding(b.Abort, def.Abort, "cancel"),
	}

	owner := make(map[string]string)
	for _, bd := range m.bindings() {
		for _, k := range bd.b.Keys() {
			if isPrintable(k) {
				return Keymap{}, &PrintableKeyError{Key: k, Action: bd.action}
			}
			if prev, taken := owner[k]; taken {
				return Keymap{}, &KeyConflictError{Key: k, Actions: [2]string{prev, bd.action}}
			}
			owner[k] = bd.action
		}
	}
	return m, nil
}

// Lookup returns the event bound to a key name such as "enter" or "alt+n".
func (m Keymap) Lookup(name string) (session.Event, bool) {
	name = normalizeKey(name)
	for _, bd := range m.bindings() {
		for _, k := range bd.b.Keys() {
			if k == name {
				return bd.event, true
			}
		}
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (m Keymap) ShortHelp() []key.Binding {
	return []key.Binding{m.Next, m.Previous, m.Submit, m.Abort}
}

// FullHelp implements help.KeyMap.
func (m Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Next, m.Previous},
		{m.Reveal, m.Suggest},
		{m.Submit, m.Abort},
	}
}

// Error implements the error interface.
func (e *KeyConflictError) Error() string {
	return fmt.Sprintf("key %q is bound to both %s and %s", e.Key, e.Actions[0], e.Actions[1])
}

// Unwrap returns ErrKeyConflict for errors.Is() compatibility.
func (e *KeyConflictError) Unwrap() error { return ErrKeyConflict }

// Error implements the error interface.
func (e *PrintableKeyError) Error() string {
	return fmt.Sprintf("key %q bound to %s is a printable character and is needed for entry keys", e.Key, e.Action)
}

// Unwrap returns ErrPrintableKey for errors.Is() compatibility.
func (e *PrintableKeyError) Unwrap() error { return ErrPrintableKey }

func (m *Keymap) bindings() []binding {
	return []binding{
		{"next", session.EventNext, &m.Next},
		{"previous", session.EventPrevious, &m.Previous},
		{"reveal", session.EventReveal, &m.Reveal},
		{"suggest", session.EventSuggest, &m.Suggest},
		{"submit", session.EventSubmit, &m.Submit},
		{"abort", session.EventAbort, &m.Abort},
	}
}

func newBinding(keys, fallback []string, desc string) key.Binding {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = normalizeKey(k); k != "" {
			names = append(names, k)
		}
	}
	if len(names) == 0 {
		names = fallback
	}
	return key.NewBinding(key.WithKeys(names...), key.WithHelp(names[0], desc))
}

func isPrintable(k string) bool {
	r, size := utf8.DecodeRuneInString(k)
	return size == len(k) && r != utf8.RuneError && unicode.IsPrint(r)
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
