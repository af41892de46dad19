package main

import (
	"os"

	"github.com/openlaw-hk/counsel/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
