package compare

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	actualLabel   = "Output"
	expectedLabel = "Expected"
	diffContext   = 3
)

// UnifiedDiff returns the unified line diff from actual to expected, one
// element per diff line and without line terminators. Inputs that split
// into the same lines produce no diff.
func UnifiedDiff(actual, expected string) []string {
	diff := difflib.UnifiedDiff{
		A:        terminate(SplitLines(actual)),
		B:        terminate(SplitLines(expected)),
		FromFile: actualLabel,
		ToFile:   expectedLabel,
		Context:  diffContext,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil || text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func terminate(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}
