// main is the entrypoint for the sprintlens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
