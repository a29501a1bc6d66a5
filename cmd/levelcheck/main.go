package main

import (
	"os"

	"github.com/msto63/logfilter/cmd/levelcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
