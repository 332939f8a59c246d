package main

import (
	"os"

	"github.com/katalvlaran/scimetric/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
