// Package main is the entry point for the priseitup API server.
package main

import (
	"os"

	"github.com/di-awab/priseitup/cmd/priseitup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
