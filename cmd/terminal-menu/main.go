// Package main provides the entry point for the terminal-menu CLI.
package main

import (
	"fmt"
	"os"

	"github.com/seanodell/vscode-terminal-menu/cmd/terminal-menu/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exit commands.ExitError
		if commands.AsExitError(err, &exit) {
			os.Exit(exit.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
