package main

import (
	"os"

	"github.com/jcmontoya/omnilearn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
