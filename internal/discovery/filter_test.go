package discovery

import (
	"testing"

	"ctr/internal/domain"

	"github.com/stretchr/testify/assert"
)

func casesNamed(names ...string) []domain.Case {
	cases := make([]domain.Case, 0, len(names))
	for _, n := range names {
		cases = append(cases, domain.Case{Name: n, Path: "tests/" + n})
	}
	return cases
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		cases    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			cases:    []string{"test_if", "test_while", "err_semi"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			cases:    []string{"test_if", "test_while", "err_semi"},
			pattern:  "test_*",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			cases:    []string{"test_while_loop", "test_for_loop", "err_semi"},
			pattern:  "*loop*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			cases:    []string{"test_if", "test_while", "err_semi"},
			pattern:  "semi",
			expected: 1,
		},
		{
			name:     "no matches",
			cases:    []string{"test_if", "err_semi"},
			pattern:  "*switch*",
			expected: 0,
		},
		{
			name:     "parts must appear in order",
			cases:    []string{"test_decl_array", "test_array_decl"},
			pattern:  "*decl*array*",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(casesNamed(tt.cases...), tt.pattern)
			assert.Len(t, result, tt.expected)
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty case list", func(t *testing.T) {
		assert.Empty(t, filter.FilterByName(nil, "test_*"))
	})

	t.Run("only wildcards match nothing extra", func(t *testing.T) {
		result := filter.FilterByName(casesNamed("a", "b"), "*")
		assert.Len(t, result, 2)
	})

	t.Run("keeps order", func(t *testing.T) {
		result := filter.FilterByName(casesNamed("test_b", "err_x", "test_a"), "test*")
		assert.Equal(t, "test_b", result[0].Name)
		assert.Equal(t, "test_a", result[1].Name)
	})
}
