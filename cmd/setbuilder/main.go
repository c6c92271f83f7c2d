// Package main provides the CLI entrypoint for setbuilder.
//
// setbuilder is the companion tool of the builder package:
//   - gen writes named selector functions for the structs of a package
//   - demo builds a sample Person with nested builders and prints it
package main

import (
	"os"

	"set-builder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
