// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/regview/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/regview/config.cue on macOS, %APPDATA%\regview\config.cue
// on Windows), from ./config.cue, or from an explicit path. It covers the preview mode,
// the pane layout, key bindings, the theme and the default entry store.
//
// Files are validated against an embedded CUE schema (config_schema.cue); values CUE
// cannot check, such as key bindings that collide, are validated after decoding.
package config
