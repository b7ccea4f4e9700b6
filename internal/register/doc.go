// SPDX-License-Identifier: MPL-2.0

// Package register defines the entry data model read by the picker: single-character
// keys, the built-in value types an entry can hold, a read-only Store contract and an
// ordered in-memory implementation of it.
//
// Values are plain Go values. The value types carry no classification logic; package
// classify maps them to type tags.
package register
