package main

import (
	"os"

	"github.com/lucianoayres/chatty-ai-community-store/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
