package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 3)

	bar.Update(1, 0)
	bar.Update(1, 1)
	bar.Update(2, 1)
	bar.Finish()

	out := buf.String()
	assert.Contains(t, out, "passed: 2")
	assert.Contains(t, out, "failed: 1]")
	assert.Contains(t, out, "3/3")
}
