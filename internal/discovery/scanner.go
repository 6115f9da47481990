package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"ctr/internal/domain"
)

// Scanner lists the fixtures of a tests directory
type Scanner struct {
	suffix string
}

// NewScanner creates a new Scanner. suffix is appended to a fixture name
// to form its golden file name.
func NewScanner(suffix string) *Scanner {
	return &Scanner{suffix: suffix}
}

// Scan returns every regular file directly inside testsDir as a case whose
// golden file lives in expectedDir. Directories are skipped; symlinks are
// followed.
func (s *Scanner) Scan(testsDir, expectedDir string) ([]domain.Case, error) {
	info, err := os.Stat(testsDir)
	if err != nil {
		return nil, fmt.Errorf("tests path does not exist: %s", testsDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("tests path is not a directory: %s", testsDir)
	}

	entries, err := os.ReadDir(testsDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", testsDir, err)
	}

	cases := make([]domain.Case, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(testsDir, entry.Name())

		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}

		cases = append(cases, domain.Case{
			Name:         entry.Name(),
			Path:         path,
			ExpectedPath: filepath.Join(expectedDir, entry.Name()+s.suffix),
			Kind:         domain.Classify(entry.Name()),
		})
	}

	return cases, nil
}
