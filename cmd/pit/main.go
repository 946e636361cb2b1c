// Package main is the entry point for the pit CLI client.
package main

import (
	"github.com/di-awab/priseitup/cmd/pit/cmd"
)

func main() {
	cmd.Execute()
}
