package domain

import "time"

// Status is the outcome of a single case
type Status int

const (
	Passed Status = iota
	Failed
	Errored
	Skipped
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Errored:
		return "errored"
	default:
		return "skipped"
	}
}

// Reason tells why a case did not pass
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonMismatch         Reason = "mismatch"
	ReasonUnexpectedStderr Reason = "unexpected-stderr"
	ReasonErrorLine        Reason = "error-line"
	ReasonPatternMissing   Reason = "error-pattern-missing"
	ReasonRunError         Reason = "run-error"
)

// Verdict is the comparison of one output against its golden file
type Verdict struct {
	Passed  bool
	Reason  Reason
	Message []string // Explanation lines, printed indented
	Diff    []string // Unified diff lines (Output vs Expected)
}

// Result represents the result of running a single case
type Result struct {
	Case     Case
	Status   Status
	Reason   Reason
	Message  []string
	Diff     []string
	Output   Output
	Err      error // Set when the case could not be executed
	Duration time.Duration
}

// Summary holds the running totals of a run
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Add accounts for a result. Skipped results are not counted and
// errored results count as failures.
func (s *Summary) Add(r Result) {
	switch r.Status {
	case Skipped:
		return
	case Passed:
		s.Passed++
	default:
		s.Failed++
	}
	s.Total++
}

// OK reports whether the run had no failures
func (s Summary) OK() bool {
	return s.Failed == 0
}

// ExitCode returns the process exit code for the run
func (s Summary) ExitCode() int {
	if s.OK() {
		return 0
	}
	return 1
}
