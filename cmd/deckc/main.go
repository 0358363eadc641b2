// Package main implements the deckc command.
package main

import (
	"fmt"
	"os"

	"github.com/hapi-suta/runbookforge-sub002/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "deckc: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
