package main

import (
	"os"

	"github.com/ordstofa/tokka/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
