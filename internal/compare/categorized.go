package compare

import (
	"fmt"
	"regexp"
	"strings"

	"ctr/internal/domain"
)

var errorLinePattern = regexp.MustCompile(`(?i)ERROR.*LINE\s+(\d+)`)

// exitStatusMarker lines are dropped from success-path outputs
const exitStatusMarker = "exit status: 0"

// Categorized applies the filename-driven rules of the category suites:
// "test*" cases must not write to stderr and ignore exit status lines,
// "err*" cases only need to report the same error line, anything else is
// compared verbatim on stdout.
type Categorized struct{}

// NewCategorized creates a new Categorized comparator
func NewCategorized() *Categorized {
	return &Categorized{}
}

// Compare implements Comparator
func (cc *Categorized) Compare(c domain.Case, out domain.Output, expected string) domain.Verdict {
	actual := out.Stdout
	if c.Kind == domain.KindError {
		actual = out.Stderr
	}

	if c.Kind == domain.KindTest && out.Stderr != "" {
		return domain.Verdict{
			Reason:  domain.ReasonUnexpectedStderr,
			Message: []string{"Expected stderr to be empty, but got:", out.Stderr},
		}
	}

	if c.Kind == domain.KindError {
		return cc.compareErrorLine(actual, expected)
	}

	normalizedActual := NormalizeTestOutput(actual, c.Kind)
	normalizedExpected := NormalizeTestOutput(expected, c.Kind)
	if normalizedActual == normalizedExpected {
		return domain.Verdict{Passed: true}
	}
	return domain.Verdict{
		Reason: domain.ReasonMismatch,
		Diff:   UnifiedDiff(normalizedActual, normalizedExpected),
	}
}

func (cc *Categorized) compareErrorLine(actual, expected string) domain.Verdict {
	detail := []string{"Actual output (stderr):", actual, "Expected output:", expected}

	actualLine, ok := ErrorLine(actual)
	if !ok {
		return domain.Verdict{
			Reason:  domain.ReasonPatternMissing,
			Message: append([]string{"ERROR and LINE not found in actual output"}, detail...),
		}
	}
	expectedLine, ok := ErrorLine(expected)
	if !ok {
		return domain.Verdict{
			Reason:  domain.ReasonPatternMissing,
			Message: append([]string{"ERROR and LINE not found in expected output"}, detail...),
		}
	}

	if actualLine != expectedLine {
		msg := fmt.Sprintf("Error line numbers don't match: expected %s, got %s", expectedLine, actualLine)
		return domain.Verdict{
			Reason:  domain.ReasonErrorLine,
			Message: append([]string{msg}, detail...),
		}
	}
	return domain.Verdict{Passed: true}
}

// ErrorLine extracts the line number of the first "ERROR ... LINE <n>"
// report in text. The match is case-insensitive and does not span lines.
func ErrorLine(text string) (string, bool) {
	m := errorLinePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// NormalizeTestOutput drops every line containing "exit status: 0" from
// the output of a "test*" case. Other kinds are returned unchanged.
func NormalizeTestOutput(output string, kind domain.Kind) string {
	if kind != domain.KindTest {
		return output
	}
	var kept []string
	for _, line := range SplitLines(output) {
		if !strings.Contains(line, exitStatusMarker) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
