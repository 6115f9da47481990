package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"ctr/internal/exitcodes"
	"ctr/internal/harness"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{name: "success", err: nil, code: exitcodes.Success},
		{name: "tests failed", err: fmt.Errorf("run: %w", ErrTestsFailed), code: exitcodes.TestFailure},
		{
			name:     "usage",
			err:      &UsageError{Usage: "Usage: ctr category [syntax-tests | semantic-tests]"},
			code:     exitcodes.TestFailure,
			expected: "Usage: ctr category [syntax-tests | semantic-tests]\n",
		},
		{
			name:     "precondition",
			err:      &harness.PreconditionError{Msg: "tests directory not found"},
			code:     exitcodes.TestFailure,
			expected: "Error: tests directory not found\n",
		},
		{name: "other", err: errors.New("boom"), code: exitcodes.TestFailure, expected: "Error: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.code, ExitCode(tt.err, &buf))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestFlags_ToConfigFlags(t *testing.T) {
	f := Flags{Processors: 2, CompilePath: "./c", NameFilter: "test_*", NoSave: true}
	cf := f.ToConfigFlags()
	assert.Equal(t, 2, cf.Processors)
	assert.Equal(t, "./c", cf.CompilePath)
	assert.Equal(t, "test_*", cf.NameFilter)
	assert.True(t, cf.NoSave)
}
