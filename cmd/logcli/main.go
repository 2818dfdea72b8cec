package main

import (
	"fmt"
	"os"

	"github.com/TimelordUK/logcli/internal/cli"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr, info); err != nil {
		fmt.Fprintf(os.Stderr, "logcli: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
