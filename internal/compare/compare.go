// Package compare decides whether the output of the compile executable
// matches a golden file.
package compare

import (
	"strings"

	"ctr/internal/domain"
)

// Comparator compares one captured output against its golden content
type Comparator interface {
	Compare(c domain.Case, out domain.Output, expected string) domain.Verdict
}

// Exact compares stdout against the whole golden file
type Exact struct{}

// NewExact creates a new Exact comparator
func NewExact() *Exact {
	return &Exact{}
}

// Compare implements Comparator
func (e *Exact) Compare(_ domain.Case, out domain.Output, expected string) domain.Verdict {
	if out.Stdout == expected {
		return domain.Verdict{Passed: true}
	}
	return domain.Verdict{
		Reason: domain.ReasonMismatch,
		Diff:   UnifiedDiff(out.Stdout, expected),
	}
}

// SplitLines splits text into lines, treating "\n", "\r\n" and "\r" as
// terminators. A trailing terminator does not start a new line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = NormalizeNewlines(text)
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// NormalizeNewlines folds "\r\n" into "\n"
func NormalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
