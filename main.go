package main

import (
	"os"

	"github.com/lsanchezo/cv-match/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
