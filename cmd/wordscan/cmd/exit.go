package cmd

import (
	"errors"
	"fmt"
)

// scanExit is returned by scan to signal a specific exit code.
// Same convention as grep: 0=found, 1=not found, 2=error.
type scanExit struct{ code int }

func (e scanExit) Error() string {
	switch e.code {
	case 0:
		return ""
	case 1:
		return "no match"
	default:
		return fmt.Sprintf("scan error (exit %d)", e.code)
	}
}

// ExitCode extracts the exit code from a scanExit error.
// Returns -1 if the error is not a scanExit.
func ExitCode(err error) int {
	var se scanExit
	if errors.As(err, &se) {
		return se.code
	}
	return -1
}
