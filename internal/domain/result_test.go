package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		expected Kind
	}{
		{name: "test_ok", expected: KindTest},
		{name: "test", expected: KindTest},
		{name: "err_missing_semi", expected: KindError},
		{name: "error1", expected: KindError},
		{name: "sample", expected: KindPlain},
		{name: "mytest", expected: KindPlain},
		{name: "Test_upper", expected: KindPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.name))
		})
	}
}

func TestSummary_Add(t *testing.T) {
	var s Summary
	s.Add(Result{Status: Passed})
	s.Add(Result{Status: Failed})
	s.Add(Result{Status: Errored})
	s.Add(Result{Status: Skipped})

	assert.Equal(t, Summary{Total: 3, Passed: 1, Failed: 2}, s)
	assert.False(t, s.OK())
	assert.Equal(t, 1, s.ExitCode())
}

func TestSummary_Empty(t *testing.T) {
	var s Summary
	assert.True(t, s.OK())
	assert.Equal(t, 0, s.ExitCode())
}

func TestNewFailure(t *testing.T) {
	t.Run("copies result fields", func(t *testing.T) {
		r := Result{
			Case:    Case{Name: "err1", Path: "tests/err1", ExpectedPath: "expected-outputs/err1-out", Kind: KindError},
			Status:  Failed,
			Reason:  ReasonErrorLine,
			Message: []string{"Error line numbers don't match: expected 9, got 3"},
			Output:  Output{Stderr: "ERROR LINE 3", ExitCode: 1},
		}
		f := NewFailure(r)
		assert.Equal(t, "err1", f.Name)
		assert.Equal(t, "err", f.Kind)
		assert.Equal(t, "failed", f.Status)
		assert.Equal(t, ReasonErrorLine, f.Reason)
		assert.Equal(t, "ERROR LINE 3", f.Stderr)
		assert.Equal(t, 1, f.ExitCode)
	})

	t.Run("uses error text when there is no message", func(t *testing.T) {
		f := NewFailure(Result{Status: Errored, Reason: ReasonRunError, Err: errors.New("boom")})
		assert.Equal(t, []string{"boom"}, f.Message)
	})
}

func TestNewReport(t *testing.T) {
	results := []Result{
		{Case: Case{Name: "test_a"}, Status: Passed},
		{Case: Case{Name: "test_b"}, Status: Failed, Reason: ReasonMismatch},
		{Case: Case{Name: "test_c"}, Status: Skipped},
		{Case: Case{Name: "test_d"}, Status: Errored, Err: errors.New("boom")},
	}
	var s Summary
	for _, r := range results {
		s.Add(r)
	}

	report := NewReport("syntax-tests", s, results, 1500*time.Millisecond, 2)

	assert.Equal(t, "syntax-tests", report.Meta.Suite)
	assert.Equal(t, 3, report.Meta.Total)
	assert.Equal(t, 1, report.Meta.Passed)
	assert.Equal(t, 2, report.Meta.Failed)
	assert.Equal(t, 1, report.Meta.Skipped)
	assert.Equal(t, 1.5, report.Meta.DurationSeconds)
	assert.Equal(t, 2, report.Meta.Workers)
	assert.NotEmpty(t, report.Meta.Timestamp)
	if assert.Len(t, report.Failures, 2) {
		assert.Equal(t, "test_b", report.Failures[0].Name)
		assert.Equal(t, "test_d", report.Failures[1].Name)
	}
}
