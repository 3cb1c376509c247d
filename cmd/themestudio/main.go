package main

import (
	"os"

	"github.com/scottlz0310/theme-studio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
