package main

import (
	"os"

	"dirhop/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
