// ABOUTME: Entry point for the codementor CLI
// ABOUTME: Terminal client for the codementor coding-education platform

package main

import (
	"fmt"
	"os"

	"github.com/codementor/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
