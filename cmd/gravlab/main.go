package main

import (
	"os"

	"gravlab/cmd/gravlab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
