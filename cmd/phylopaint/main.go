// Package main provides the CLI for the PhyloPaint tree highlighter.
package main

import (
	"os"

	"github.com/cladeworks/phylopaint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
