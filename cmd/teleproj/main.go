package main

import (
	"fmt"
	"runtime"
)

// Version information - set via -ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	Execute()
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("teleproj %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
