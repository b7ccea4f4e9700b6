// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test doubles for the host primitives the picker talks
// to (a recording pane surface and an in-memory input line) and helpers for tests
// that handle errors appropriately, reducing boilerplate.
//
// Common helpers include environment variable management (MustSetenv) and file
// fixtures (MustWriteFile, MustMkdirAll).
package testutil
