// Package main is the entry point for the ubiq CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/ubiq/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
