package main

import (
	"os"

	"github.com/dsengupta/mindprobe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
