package main

import (
	"os"

	"github.com/mfaulds/weekplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
