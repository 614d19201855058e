package main

import (
	"os"

	"houses/cmd/houses/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
