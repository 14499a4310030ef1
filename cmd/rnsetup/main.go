package main

import (
	"os"

	"github.com/jakoblorz/rnsetup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
