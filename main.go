// SPDX-License-Identifier: MPL-2.0

// regview reads one entry key for a command, showing a live preview of the
// entries the command accepts.
package main

import cmd "github.com/regview/regview/cmd/regview"

func main() {
	cmd.Execute()
}
