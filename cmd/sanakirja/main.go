// Command sanakirja serves and edits the Finnish-English dictionary.
package main

import (
	"os"

	"sanakirja/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
