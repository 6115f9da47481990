package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ctr/internal/domain"
)

var (
	passColor   = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
	warnColor   = color.New(color.FgYellow)
	headerColor = color.New(color.FgCyan)
	hunkColor   = color.New(color.FgCyan)
)

const indent = "  "

// BasicReport prints the results of the plain runner: every case gets a
// "Testing:" line followed by its verdict.
type BasicReport struct {
	out io.Writer
}

// NewBasicReport creates a new BasicReport writing to out
func NewBasicReport(out io.Writer) *BasicReport {
	return &BasicReport{out: out}
}

// Begin prints the header
func (r *BasicReport) Begin() {
	headerColor.Fprintln(r.out, "===== Test Results =====")
	fmt.Fprintln(r.out)
}

// Report prints one result
func (r *BasicReport) Report(res domain.Result) {
	name := res.Case.Name
	if res.Status == domain.Skipped {
		printSkipped(r.out, name)
		return
	}

	fmt.Fprintf(r.out, "Testing: %s\n", name)
	switch res.Status {
	case domain.Passed:
		passColor.Fprintf(r.out, "[PASS] %s\n", name)
	case domain.Errored:
		failColor.Fprintf(r.out, "Error testing %s: %v\n", name, res.Err)
		return
	default:
		failColor.Fprintf(r.out, "[FAIL] %s\n", name)
		printMessage(r.out, res.Message)
		fmt.Fprintln(r.out, "Differences found:")
		printDiff(r.out, res.Diff)
	}
	fmt.Fprintln(r.out)
}

// End prints the summary
func (r *BasicReport) End(s domain.Summary) {
	printSummary(r.out, s)
}

// CategoryReport prints the results of a category run: passing cases are
// silent, failures are listed with their explanation.
type CategoryReport struct {
	out      io.Writer
	category string
}

// NewCategoryReport creates a new CategoryReport writing to out
func NewCategoryReport(out io.Writer, category string) *CategoryReport {
	return &CategoryReport{out: out, category: category}
}

// Begin prints the header
func (r *CategoryReport) Begin() {
	headerColor.Fprintf(r.out, "===== %s Test Results =====\n", CategoryTitle(r.category))
}

// Report prints one result
func (r *CategoryReport) Report(res domain.Result) {
	name := res.Case.Name
	switch res.Status {
	case domain.Passed:
		return
	case domain.Skipped:
		printSkipped(r.out, name)
	case domain.Errored:
		fmt.Fprintln(r.out)
		failColor.Fprintf(r.out, "[ERROR] %s: %v\n", name, res.Err)
	default:
		fmt.Fprintln(r.out)
		failColor.Fprintf(r.out, "[FAIL] %s\n", name)
		printMessage(r.out, res.Message)
		if res.Reason == domain.ReasonMismatch {
			fmt.Fprintln(r.out, "Differences found:")
			printDiff(r.out, res.Diff)
		}
	}
}

// End prints the summary
func (r *CategoryReport) End(s domain.Summary) {
	fmt.Fprintln(r.out)
	printSummary(r.out, s)
}

// CategoryTitle turns "syntax-tests" into "Syntax Tests"
func CategoryTitle(category string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(category, "-", " "))
}

func printSkipped(out io.Writer, name string) {
	warnColor.Fprintf(out, "Warning: Expected output file not found for %s, skipping test\n", name)
}

func printMessage(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(out, "%s%s\n", indent, line)
	}
}

func printDiff(out io.Writer, lines []string) {
	for _, line := range lines {
		c := diffLineColor(line)
		if c == nil {
			fmt.Fprintf(out, "%s%s\n", indent, line)
			continue
		}
		c.Fprintf(out, "%s%s\n", indent, line)
	}
}

func diffLineColor(line string) *color.Color {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return nil
	case strings.HasPrefix(line, "@@"):
		return hunkColor
	case strings.HasPrefix(line, "+"):
		return passColor
	case strings.HasPrefix(line, "-"):
		return failColor
	}
	return nil
}

func printSummary(out io.Writer, s domain.Summary) {
	headerColor.Fprintln(out, "===== Summary =====")
	fmt.Fprintf(out, "Total tests: %d\n", s.Total)
	fmt.Fprintf(out, "Passed:      %d\n", s.Passed)
	fmt.Fprintf(out, "Failed:      %d\n", s.Failed)
	if s.OK() {
		passColor.Fprintln(out, "All tests passed!")
	} else {
		failColor.Fprintln(out, "Some tests failed!")
	}
}
