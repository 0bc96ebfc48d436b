package main

import (
	"os"

	"github.com/msto63/mOFX/cmd/mofx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
