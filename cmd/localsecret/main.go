package main

import (
	"os"

	"github.com/joeka/localsecret/cmd/localsecret/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
