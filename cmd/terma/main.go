package main

import (
	"os"

	"github.com/termacli/terma/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
