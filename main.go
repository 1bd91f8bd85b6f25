package main

import (
	"os"

	"github.com/mindcare-edu/mindcare/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
