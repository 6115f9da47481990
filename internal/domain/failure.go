package domain

import "time"

// Failure is the persisted form of a case that did not pass
type Failure struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Expected string   `json:"expected"`
	Kind     string   `json:"kind"`
	Status   string   `json:"status"`
	Reason   Reason   `json:"reason"`
	Message  []string `json:"message,omitempty"`
	Diff     []string `json:"diff,omitempty"`
	Stdout   string   `json:"stdout,omitempty"`
	Stderr   string   `json:"stderr,omitempty"`
	ExitCode int      `json:"exit_code"`
	Resolved bool     `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}

// NewFailure converts a non-passing result to its persisted form
func NewFailure(r Result) Failure {
	f := Failure{
		Name:     r.Case.Name,
		Path:     r.Case.Path,
		Expected: r.Case.ExpectedPath,
		Kind:     r.Case.Kind.String(),
		Status:   r.Status.String(),
		Reason:   r.Reason,
		Message:  r.Message,
		Diff:     r.Diff,
		Stdout:   r.Output.Stdout,
		Stderr:   r.Output.Stderr,
		ExitCode: r.Output.ExitCode,
	}
	if r.Err != nil && len(f.Message) == 0 {
		f.Message = []string{r.Err.Error()}
	}
	return f
}

// RunMeta contains metadata about a run
type RunMeta struct {
	Suite           string  `json:"suite"`
	Total           int     `json:"total"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Skipped         int     `json:"skipped"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// Report is the complete persisted structure of a run
type Report struct {
	Meta     RunMeta   `json:"meta"`
	Failures []Failure `json:"failures"`
}

// NewReport builds the persisted form of a finished run
func NewReport(suite string, summary Summary, results []Result, duration time.Duration, workers int) *Report {
	report := &Report{
		Meta: RunMeta{
			Suite:           suite,
			Total:           summary.Total,
			Passed:          summary.Passed,
			Failed:          summary.Failed,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Failures: []Failure{},
	}
	for _, r := range results {
		switch r.Status {
		case Skipped:
			report.Meta.Skipped++
		case Failed, Errored:
			report.Failures = append(report.Failures, NewFailure(r))
		}
	}
	return report
}
