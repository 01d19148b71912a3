// SPDX-License-Identifier: MIT

// Command tollgrid is the command-line front end of the tollgrid library.
package main

import (
	"os"

	"github.com/katalvlaran/tollgrid/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
