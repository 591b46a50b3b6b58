// Package main provides the entry point for the USB speed test harness
package main

import (
	"fmt"
	"os"

	"github.com/txlab/go-usb-speedtest/cmd/usb-speedtest/cmd"
)

func main() {
	os.Exit(run())
}

// run executes the main application logic and returns the exit code.
// This function is separated from main() to enable testing.
func run() int {
	if err := cmd.Execute(Version, Commit, BuildDate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
