// Package main is the entry point for autoprofit.
package main

import (
	"os"

	"autoprofit/cmd/autoprofit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
