// Package harness drives the compile executable over a directory of
// fixtures and compares each output with its golden file.
package harness

import (
	"context"
	"fmt"
	"os"
	"time"

	"ctr/internal/compare"
	"ctr/internal/discovery"
	"ctr/internal/domain"
	"ctr/internal/execution"
)

// Reporter receives the progress of a run
type Reporter interface {
	Begin()
	Report(r domain.Result)
	End(s domain.Summary)
}

// Suite describes one set of fixtures and how to run and judge them
type Suite struct {
	Name        string
	TestsDir    string
	ExpectedDir string
	Filter      string
	Invoker     execution.Invoker
	Comparator  compare.Comparator
}

// Run is the outcome of a suite
type Run struct {
	Suite    string
	Summary  domain.Summary
	Results  []domain.Result
	Skipped  int
	Duration time.Duration
}

// Failures returns the results that did not pass
func (r *Run) Failures() []domain.Result {
	var failed []domain.Result
	for _, res := range r.Results {
		if res.Status == domain.Failed || res.Status == domain.Errored {
			failed = append(failed, res)
		}
	}
	return failed
}

// Harness runs suites
type Harness struct {
	scanner  *discovery.Scanner
	filter   *discovery.Filter
	executor execution.Executor
	reporter Reporter
}

// New creates a new Harness
func New(scanner *discovery.Scanner, filter *discovery.Filter, executor execution.Executor, reporter Reporter) *Harness {
	return &Harness{
		scanner:  scanner,
		filter:   filter,
		executor: executor,
		reporter: reporter,
	}
}

// Run discovers and executes the cases of the suite. Only a failure to
// list the fixtures is returned as an error.
func (h *Harness) Run(ctx context.Context, suite Suite) (*Run, error) {
	cases, err := h.Discover(suite)
	if err != nil {
		return nil, err
	}
	return h.Execute(ctx, suite, cases), nil
}

// Discover lists the cases of the suite, narrowed by its filter
func (h *Harness) Discover(suite Suite) ([]domain.Case, error) {
	cases, err := h.scanner.Scan(suite.TestsDir, suite.ExpectedDir)
	if err != nil {
		return nil, err
	}
	return h.filter.FilterByName(cases, suite.Filter), nil
}

// Execute runs the given cases. Per-case problems never abort the run;
// they become failed or errored results.
func (h *Harness) Execute(ctx context.Context, suite Suite, cases []domain.Case) *Run {
	run := &Run{Suite: suite.Name}
	h.reporter.Begin()
	run.Duration = h.executor.Execute(ctx, cases, h.caseFunc(suite), func(r domain.Result) {
		if r.Status == domain.Skipped {
			run.Skipped++
		}
		run.Summary.Add(r)
		run.Results = append(run.Results, r)
		h.reporter.Report(r)
	})
	h.reporter.End(run.Summary)

	return run
}

func (h *Harness) caseFunc(suite Suite) execution.CaseFunc {
	return func(ctx context.Context, c domain.Case) domain.Result {
		start := time.Now()

		if !isRegularFile(c.ExpectedPath) {
			return domain.Result{Case: c, Status: domain.Skipped}
		}

		r := runCase(ctx, suite, c)
		r.Duration = time.Since(start)
		return r
	}
}

func runCase(ctx context.Context, suite Suite, c domain.Case) domain.Result {
	out, err := suite.Invoker.Run(ctx, c.Path)
	if err != nil {
		return errored(c, out, err)
	}

	expected, err := os.ReadFile(c.ExpectedPath)
	if err != nil {
		return errored(c, out, fmt.Errorf("read expected output: %w", err))
	}

	out.Stdout = compare.NormalizeNewlines(out.Stdout)
	out.Stderr = compare.NormalizeNewlines(out.Stderr)
	v := suite.Comparator.Compare(c, out, compare.NormalizeNewlines(string(expected)))

	r := domain.Result{
		Case:    c,
		Status:  domain.Passed,
		Reason:  v.Reason,
		Message: v.Message,
		Diff:    v.Diff,
		Output:  out,
	}
	if !v.Passed {
		r.Status = domain.Failed
	}
	return r
}

func errored(c domain.Case, out domain.Output, err error) domain.Result {
	return domain.Result{
		Case:   c,
		Status: domain.Errored,
		Reason: domain.ReasonRunError,
		Output: out,
		Err:    err,
	}
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
