// Package main contains the cyclecheck entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/undicycle/internal/cli"
)

type exitCodeError interface {
	ExitCode() int
}

func init() {
	cli.DisableColorBasedOnEnvVar()
}

func main() {
	cmd := cli.BuildRootCmd()
	if err := cmd.Execute(); err != nil {
		var exitCodeErr exitCodeError
		if errors.As(err, &exitCodeErr) {
			os.Exit(exitCodeErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
