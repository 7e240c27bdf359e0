package main

import (
	"os"

	"github.com/chris-arsenault/lorewiki/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
