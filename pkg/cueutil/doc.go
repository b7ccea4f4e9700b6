// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The config and entry-snapshot loaders both validate user files against an
// embedded schema in three steps:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with the schema definition
//  3. Validate and decode to a Go struct
//
// # Usage
//
//	//go:embed store_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseFile[snapshotFile](schemaBytes, path, "#Store")
//	if err != nil {
//	    return nil, err // error names the file and the CUE path
//	}
package cueutil
