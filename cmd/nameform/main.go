package main

import (
	"os"

	"github.com/idilsaglam/nameform/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
