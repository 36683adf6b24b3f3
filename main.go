// Package main is the entry point for the projstat command-line tool.
package main

import (
	"os"

	"github.com/idelchi/projstat/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version string

func main() {
	if err := cli.New(version).Execute(); err != nil {
		os.Exit(1)
	}
}
