// SPDX-License-Identifier: MPL-2.0

// Package preview renders eligible entries into an auxiliary pane and moves a single
// highlight cursor across it.
//
// The pane itself is host independent: Pane keeps the rendered lines, the cursor and
// the open/closed lifecycle, and forwards display changes to a Surface supplied by the
// host (a terminal view, a test recorder). Closing is idempotent and hides the surface
// at most once.
package preview
