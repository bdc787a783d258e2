// Package main provides the grocer CLI, a grocery-list manager persisting
// to a spreadsheet-backed store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pantry-tools/grocer/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error to the CLI exit code: user mistakes (bad input,
// bad config) exit 1, environment and persistence failures exit 2.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, types.ErrItemRequired),
		errors.Is(err, types.ErrInvalidUrgency),
		errors.Is(err, types.ErrViewMismatch),
		errors.Is(err, types.ErrBackendEmpty),
		errors.Is(err, types.ErrBackendUnknown),
		errors.Is(err, types.ErrSheetURLEmpty),
		errors.Is(err, types.ErrCacheTTLInvalid),
		errors.Is(err, errBadPosition):
		return exitUserError
	default:
		return exitSysError
	}
}
