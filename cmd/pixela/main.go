package main

import (
	"fmt"
	"os"

	"github.com/DEX-01-CODER/habit-tracker-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
