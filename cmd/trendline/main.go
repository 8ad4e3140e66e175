package main

import (
	"os"

	"trendline/cmd/trendline/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
