package discovery

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"ctr/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	testsDir := filepath.Join(root, "tests")
	expectedDir := filepath.Join(root, "expected-outputs")
	require.NoError(t, os.MkdirAll(filepath.Join(testsDir, "nested"), 0755))

	for _, name := range []string{"test_ok", "err_line", "sample", "nested/test_hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(testsDir, name), []byte("x"), 0644))
	}

	scanner := NewScanner("-out")

	t.Run("lists regular files only", func(t *testing.T) {
		cases, err := scanner.Scan(testsDir, expectedDir)
		require.NoError(t, err)

		names := make([]string, 0, len(cases))
		for _, c := range cases {
			names = append(names, c.Name)
		}
		assert.ElementsMatch(t, []string{"test_ok", "err_line", "sample"}, names)
	})

	t.Run("resolves golden paths and kinds", func(t *testing.T) {
		cases, err := scanner.Scan(testsDir, expectedDir)
		require.NoError(t, err)

		byName := make(map[string]domain.Case)
		for _, c := range cases {
			byName[c.Name] = c
		}
		assert.Equal(t, filepath.Join(expectedDir, "err_line-out"), byName["err_line"].ExpectedPath)
		assert.Equal(t, filepath.Join(testsDir, "test_ok"), byName["test_ok"].Path)
		assert.Equal(t, domain.KindError, byName["err_line"].Kind)
		assert.Equal(t, domain.KindTest, byName["test_ok"].Kind)
		assert.Equal(t, domain.KindPlain, byName["sample"].Kind)
	})

	t.Run("follows symlinks to files", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlinks need privileges on windows")
		}
		dir := t.TempDir()
		target := filepath.Join(root, "target")
		require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
		require.NoError(t, os.Symlink(target, filepath.Join(dir, "test_link")))

		cases, err := scanner.Scan(dir, expectedDir)
		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.Equal(t, "test_link", cases[0].Name)
	})

	t.Run("empty directory", func(t *testing.T) {
		cases, err := scanner.Scan(t.TempDir(), expectedDir)
		require.NoError(t, err)
		assert.Empty(t, cases)
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path", expectedDir)
		assert.Error(t, err)
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(testsDir, "sample"), expectedDir)
		assert.Error(t, err)
	})
}
