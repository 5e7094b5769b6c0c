// Package main is the entry point for the pack CLI.
package main

import (
	goerrors "errors"
	"fmt"
	"os"

	"github.com/idrispack/cli/internal/cmd"
	"github.com/idrispack/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *errors.ExitError
		if goerrors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
