// Package main is the entry point for the morph CLI.
package main

import (
	"os"

	"github.com/f3rmion/morph/cmd/morph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
