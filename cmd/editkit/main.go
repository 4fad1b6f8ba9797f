// Package main is the entry point for the editkit CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/editkit/internal/cli"
	"github.com/yaklabco/editkit/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Validation failures already printed their diagnostic.
		if errors.Is(err, cli.ErrValidationFailed) {
			return cli.ExitValidationError
		}
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitInternalError
	}

	return cli.ExitSuccess
}
