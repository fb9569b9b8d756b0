// Package main is the entry point for code-entropy CLI.
package main

import (
	"os"

	"code-entropy/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
