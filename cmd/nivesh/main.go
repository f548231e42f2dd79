package main

import (
	"os"

	"github.com/niveshlabs/nivesh/cmd/nivesh/commands"
)

// main is the entry point for the Nivesh CLI: go run ./cmd/nivesh [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
