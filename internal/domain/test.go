package domain

import "strings"

// Kind classifies a fixture by its filename prefix
type Kind int

const (
	// KindPlain is a fixture matching neither prefix; its stdout is compared as-is
	KindPlain Kind = iota
	// KindTest is a success-path fixture ("test*"); stderr must stay empty
	KindTest
	// KindError is an expected-error fixture ("err*"); only the reported line is checked
	KindError
)

// String returns the prefix the kind is derived from
func (k Kind) String() string {
	switch k {
	case KindTest:
		return "test"
	case KindError:
		return "err"
	default:
		return "plain"
	}
}

// Classify derives the kind of a fixture from its file name
func Classify(name string) Kind {
	switch {
	case strings.HasPrefix(name, "err"):
		return KindError
	case strings.HasPrefix(name, "test"):
		return KindTest
	default:
		return KindPlain
	}
}

// Case represents a fixture to be fed to the compile executable
type Case struct {
	Name         string // File name inside the tests directory
	Path         string // Path to the fixture
	ExpectedPath string // Path to the golden file (<expected dir>/<name>-out)
	Kind         Kind
}

// Output is what the compile executable produced for one fixture
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
