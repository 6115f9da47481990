package compare

import (
	"testing"

	"ctr/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCategorized_ErrorFiles(t *testing.T) {
	cmp := NewCategorized()
	c := domain.Case{Name: "err_token", Kind: domain.KindError}

	tests := []struct {
		name     string
		stderr   string
		expected string
		passed   bool
		reason   domain.Reason
		message  string
	}{
		{
			name:     "same line different text",
			stderr:   "ERROR: bad token LINE 7",
			expected: "ERROR: unexpected symbol LINE 7",
			passed:   true,
		},
		{
			name:     "different line",
			stderr:   "ERROR ... LINE 3",
			expected: "ERROR ... LINE 9",
			reason:   domain.ReasonErrorLine,
			message:  "Error line numbers don't match: expected 9, got 3",
		},
		{
			name:     "case insensitive",
			stderr:   "error near 'x' on line 12\n",
			expected: "ERROR: something LINE 12\n",
			passed:   true,
		},
		{
			name:     "missing in actual",
			stderr:   "",
			expected: "ERROR LINE 1",
			reason:   domain.ReasonPatternMissing,
			message:  "ERROR and LINE not found in actual output",
		},
		{
			name:     "missing in expected",
			stderr:   "ERROR LINE 1",
			expected: "nothing here",
			reason:   domain.ReasonPatternMissing,
			message:  "ERROR and LINE not found in expected output",
		},
		{
			name:     "pattern does not span lines",
			stderr:   "ERROR: oops\nLINE 4",
			expected: "ERROR LINE 4",
			reason:   domain.ReasonPatternMissing,
			message:  "ERROR and LINE not found in actual output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := cmp.Compare(c, domain.Output{Stdout: "ignored", Stderr: tt.stderr}, tt.expected)
			assert.Equal(t, tt.passed, v.Passed)
			assert.Equal(t, tt.reason, v.Reason)
			if tt.message != "" {
				assert.Equal(t, tt.message, v.Message[0])
				assert.Contains(t, v.Message, tt.stderr)
				assert.Contains(t, v.Message, tt.expected)
			}
		})
	}
}

func TestCategorized_TestFiles(t *testing.T) {
	cmp := NewCategorized()
	c := domain.Case{Name: "test_ok", Kind: domain.KindTest}

	t.Run("stderr fails even when stdout matches", func(t *testing.T) {
		v := cmp.Compare(c, domain.Output{Stdout: "ok\n", Stderr: "warning: unused\n"}, "ok\n")
		assert.False(t, v.Passed)
		assert.Equal(t, domain.ReasonUnexpectedStderr, v.Reason)
		assert.Equal(t, []string{"Expected stderr to be empty, but got:", "warning: unused\n"}, v.Message)
		assert.Empty(t, v.Diff)
	})

	t.Run("exit status lines are stripped from actual", func(t *testing.T) {
		v := cmp.Compare(c, domain.Output{Stdout: "ok\nexit status: 0\n"}, "ok\n")
		assert.True(t, v.Passed)
	})

	t.Run("exit status lines are stripped from expected", func(t *testing.T) {
		v := cmp.Compare(c, domain.Output{Stdout: "ok\n"}, "ok\nprogram exit status: 0\n")
		assert.True(t, v.Passed)
	})

	t.Run("other exit statuses are kept", func(t *testing.T) {
		v := cmp.Compare(c, domain.Output{Stdout: "ok\nexit status: 1\n"}, "ok\n")
		assert.False(t, v.Passed)
		assert.Equal(t, domain.ReasonMismatch, v.Reason)
		assert.Contains(t, v.Diff, "-exit status: 1")
	})
}

func TestCategorized_PlainFiles(t *testing.T) {
	cmp := NewCategorized()
	c := domain.Case{Name: "sample", Kind: domain.KindPlain}

	t.Run("stdout compared verbatim", func(t *testing.T) {
		v := cmp.Compare(c, domain.Output{Stdout: "x\n", Stderr: "noise"}, "x\n")
		assert.True(t, v.Passed)
	})

	t.Run("no normalization", func(t *testing.T) {
		v := cmp.Compare(c, domain.Output{Stdout: "x\nexit status: 0\n"}, "x\n")
		assert.False(t, v.Passed)
		assert.Equal(t, domain.ReasonMismatch, v.Reason)
	})

	t.Run("trailing newline matters", func(t *testing.T) {
		v := cmp.Compare(c, domain.Output{Stdout: "x"}, "x\n")
		assert.False(t, v.Passed)
	})
}

func TestNormalizeTestOutput(t *testing.T) {
	assert.Equal(t, "a\nb", NormalizeTestOutput("a\nexit status: 0\nb\n", domain.KindTest))
	assert.Equal(t, "a\nexit status: 0\n", NormalizeTestOutput("a\nexit status: 0\n", domain.KindPlain))
	assert.Equal(t, "", NormalizeTestOutput("exit status: 0\n", domain.KindTest))
}

func TestErrorLine(t *testing.T) {
	line, ok := ErrorLine("ERROR: x at LINE 5 and LINE 8")
	assert.True(t, ok)
	assert.Equal(t, "8", line, "greedy match takes the last LINE on the line")

	_, ok = ErrorLine("LINE 5")
	assert.False(t, ok)
}
