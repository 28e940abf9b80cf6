package main

import (
	"os"

	"github.com/goliatone/go-content-site/cmd/site/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
