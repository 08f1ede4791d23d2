package main

import (
	"os"

	"mwtrack/cmd/mwtrack/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
