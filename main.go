package main

import (
	"os"

	"github.com/FranLegon/drive-transfer/cmd"
)

// main is the entry point for the entire application. Its sole responsibility
// is to execute the root command defined in the 'cmd' package; every error
// path has already printed its own message by the time it reaches here.
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
