package main

import (
	"os"

	"github.com/retailbase/retailctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
