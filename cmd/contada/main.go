package main

import (
	"os"

	"github.com/contada-dev/contada/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
