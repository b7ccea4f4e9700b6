// SPDX-License-Identifier: MPL-2.0

// Package classify maps entry values to semantic type tags.
//
// Classification is an ordered list of (predicate, tag) rules: the built-in structural
// rules run first, then extension rules in registration order, and the first matching
// rule wins. Adding a new tag only appends a rule; existing rules are never touched.
package classify
