package main

import (
	"os"

	"github.com/signaura/signaura/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
