// SPDX-License-Identifier: MPL-2.0

// Package replay runs picking sessions from a key script instead of a terminal.
//
// A script is a string of literal characters and named keys in angle brackets:
//
//	a<enter>          type "a", then submit
//	<down><down><enter>
//	<<                a literal "<"
//
// Named keys are resolved through a keymap.Keymap, plus <backspace>, which deletes
// the last character of the input line. Sessions played from a script run with
// session.Options.Unattended set, so navigation and on-demand reveal keys are
// accepted but have no effect.
package replay
