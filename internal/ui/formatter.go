package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"ctr/internal/domain"
)

// Formatter formats and displays stored runs and fixture listings
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

const statsRow = "├─────────────────────────────────┼─────────────────────────────┤"

// PrintStats displays the meta statistics of a stored run
func (f *Formatter) PrintStats(report *domain.Report) {
	meta := report.Meta

	fmt.Fprint(f.out, "\n")
	headerColor.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	headerColor.Fprintln(f.out, "║                    Test Execution Statistics                  ║")
	headerColor.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Suite", meta.Suite, nil)
	fmt.Fprintln(f.out, statsRow)
	f.row("Total Tests", meta.Total, nil)
	fmt.Fprintln(f.out, statsRow)
	f.row("Passed", meta.Passed, passColor)
	fmt.Fprintln(f.out, statsRow)
	f.row("Failed", meta.Failed, failColor)
	fmt.Fprintln(f.out, statsRow)
	f.row("Skipped (no golden file)", meta.Skipped, warnColor)
	fmt.Fprintln(f.out, statsRow)
	f.row("Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), nil)
	fmt.Fprintln(f.out, statsRow)
	f.row("Workers", meta.Workers, nil)
	fmt.Fprintln(f.out, statsRow)
	f.row("Timestamp", meta.Timestamp, nil)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if meta.Failed == 0 {
		passColor.Fprintln(f.out, "✓ All tests passed!")
		return
	}

	failColor.Fprintf(f.out, "✗ %d test(s) failed\n", meta.Failed)
	fmt.Fprintln(f.out)
	for i, failure := range report.Failures {
		connector := "├── "
		if i == len(report.Failures)-1 {
			connector = "└── "
		}
		fmt.Fprintf(f.out, "%s%s %s\n", connector, warnColor.Sprint(failure.Name), failColor.Sprintf("(%s)", failure.Reason))
	}
}

func (f *Formatter) row(label string, value any, c *color.Color) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	cell := fmt.Sprintf("%-27v │", value)
	if c == nil {
		fmt.Fprintln(f.out, cell)
		return
	}
	c.Fprintln(f.out, cell)
}

// PrintCaseList prints the fixtures of a suite as a tree, marking each
// fixture's kind and whether its golden file is missing
func (f *Formatter) PrintCaseList(title string, cases []domain.Case) {
	passColor.Fprintf(f.out, "Found %d fixture(s) in %s:\n", len(cases), title)
	fmt.Fprintln(f.out)

	for i, c := range cases {
		connector := "├── "
		if i == len(cases)-1 {
			connector = "└── "
		}

		marker := ""
		if _, err := os.Stat(c.ExpectedPath); err != nil {
			marker = " " + failColor.Sprint("[no golden]")
		}

		fmt.Fprintf(f.out, "%s%s %s%s\n", connector, headerColor.Sprint(c.Name), warnColor.Sprintf("(%s)", c.Kind), marker)
	}
}
