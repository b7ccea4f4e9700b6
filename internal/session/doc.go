// SPDX-License-Identifier: MPL-2.0

// Package session composes one picking session: it resolves the calling command's
// descriptor, filters the eligible entries, opens the preview pane according to the
// preview mode, runs the host's read loop feeding events into the input engine, and
// closes the pane on every exit path.
package session
