// SPDX-License-Identifier: MPL-2.0

// Package tui provides the interactive picker host built on Charm libraries.
//
// The host runs one Bubble Tea program per session read: a bubbles textinput is
// the input line, the preview pane is drawn with lipgloss below (or above) the
// prompt, and key presses are mapped to session events through a keymap.Keymap.
// Edits are dispatched synchronously, or coalesced on a refresh tick when a
// refresh interval is configured.
package tui
