package main

import (
	"os"

	"github.com/alukotobi/tobichat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
