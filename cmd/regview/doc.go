// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for regview.
//
// The root command loads the configuration once per invocation and hands an
// App to every subcommand. Picking runs a session against either the terminal
// picker or a key script given with --keys.
package cmd
