// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown guidance for
// the failures a user can fix, rendered with glamour by the CLI.
package issue
