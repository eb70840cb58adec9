// Package main provides the entry point for the maamarim CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Aman-CERP/maamarim/cmd/maamarim/cmd"
	merrors "github.com/Aman-CERP/maamarim/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, merrors.FormatForCLI(err))
		os.Exit(1)
	}
}
