package cli

import (
	"errors"
	"fmt"
	"io"

	"ctr/internal/exitcodes"
)

// ErrTestsFailed is returned by a run that finished with failures. The
// report has already been printed.
var ErrTestsFailed = errors.New("some tests failed")

// UsageError is returned for invalid positional arguments
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return e.Usage
}

// ExitCode prints what err calls for on out and returns the process exit code
func ExitCode(err error, out io.Writer) int {
	if err == nil {
		return exitcodes.Success
	}

	var usage *UsageError
	switch {
	case errors.Is(err, ErrTestsFailed):
	case errors.As(err, &usage):
		fmt.Fprintln(out, usage.Usage)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return exitcodes.TestFailure
}
