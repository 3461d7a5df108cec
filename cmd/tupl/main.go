package main

import (
	"os"

	"github.com/msto63/tuplang/cmd/tupl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
