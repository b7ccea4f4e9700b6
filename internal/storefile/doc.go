// SPDX-License-Identifier: MPL-2.0

// Package storefile loads an entry snapshot file into a register.MemStore.
//
// Snapshots are written in CUE or TOML. Both forms are validated against the
// embedded #Store schema, so a TOML file obeys exactly the same rules as its CUE
// equivalent:
//
//	entries: [
//		{key: "a", type: "text", text: "hello"},
//		{key: "p", type: "location", buffer: "main.go", offset: 120},
//	]
package storefile
