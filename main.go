package main

import (
	"os"

	"github.com/abhisek/autodidact/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
