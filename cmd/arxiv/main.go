package main

import (
	"os"

	"github.com/neoncitylights/arxiv/cmd/arxiv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
