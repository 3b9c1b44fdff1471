package main

import (
	"fmt"
	"runtime"
)

// set by the build system via -ldflags
var (
	AppVersion = "dev"
	GitCommit  = ""
)

func version() string {
	if GitCommit == "" {
		return fmt.Sprintf("dcabot %s (%s)", AppVersion, runtime.Version())
	}

	return fmt.Sprintf("dcabot %s (commit %s, %s)", AppVersion, GitCommit, runtime.Version())
}
