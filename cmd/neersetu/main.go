// NeerSetu answers groundwater questions for administrative regions.
// This CLI drives the core library: schema bootstrap, location
// resolution, canonical statistics and rankings.
package main

import (
	"fmt"
	"os"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	if err := getRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
