package main

import (
	"os"

	"calcbox/cmd/calcbox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
