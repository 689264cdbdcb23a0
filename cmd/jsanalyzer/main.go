package main

import (
	"os"

	"jsanalyzer/internal/ui/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
