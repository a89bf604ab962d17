package main

import (
	"os"

	"github.com/sfce-dev/sfce/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
