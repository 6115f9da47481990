package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"time"

	"ctr/internal/domain"
)

const waitDelay = 2 * time.Second

// Runner executes the compile executable for a single fixture
type Runner struct {
	path    string
	args    []string
	stdin   bool
	timeout time.Duration
}

// NewArgRunner creates a Runner that passes the fixture path as the last
// argument: compile <fixture>
func NewArgRunner(path string, timeout time.Duration) *Runner {
	return &Runner{path: path, timeout: timeout}
}

// NewStdinRunner creates a Runner that streams the fixture on stdin:
// compile [args...] < fixture. No shell is involved.
func NewStdinRunner(path string, args []string, timeout time.Duration) *Runner {
	return &Runner{path: path, args: slices.Clone(args), stdin: true, timeout: timeout}
}

// Run executes the compile executable and captures stdout and stderr.
// A non-zero exit status is not an error; it is recorded on the output.
func (r *Runner) Run(ctx context.Context, fixture string) (domain.Output, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := slices.Clone(r.args)
	var input *os.File
	if r.stdin {
		f, err := os.Open(fixture)
		if err != nil {
			return domain.Output{}, fmt.Errorf("open fixture: %w", err)
		}
		defer f.Close()
		input = f
	} else {
		args = append(args, fixture)
	}

	cmd := exec.CommandContext(ctx, r.path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if input != nil {
		cmd.Stdin = input
	}
	// Grandchildren holding the pipes open must not outlive a kill by much
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	out := domain.Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) && r.timeout > 0 {
			return out, fmt.Errorf("timed out after %s", r.timeout)
		}
		return out, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("run %s: %w", r.path, err)
	}
	return out, nil
}
