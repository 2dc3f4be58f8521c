// watchpick picks a text file interactively and launches the watch CLI on it.
package main

import (
	"os"

	"github.com/hupe1980/watchpick/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
