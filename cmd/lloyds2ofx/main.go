package main

import (
	"os"

	"github.com/ofx-dev/lloyds2ofx/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
