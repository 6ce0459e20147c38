package main

import (
	"os"

	"github.com/studybuddy-ai/studybuddy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
