// SPDX-License-Identifier: MPL-2.0

// Package keymap binds key names to session events. The same key map drives the
// interactive host, where names come from Bubble Tea key messages, and the replay
// host, where names come from a key script.
package keymap
