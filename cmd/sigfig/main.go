package main

import (
	"os"

	"github.com/msto63/sigfig/cmd/sigfig/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
