// wordscan finds whole-word occurrences of many patterns in one pass.
// Single binary: scan files, save pattern sets, watch files for changes.
package main

import (
	"os"

	"github.com/corey/wordscan/cmd/wordscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		os.Exit(2)
	}
}
