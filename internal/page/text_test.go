package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapBreaksOnWordBoundaries(t *testing.T) {
	lines := wrap("a vault is just a folder of markdown files", 16)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 16)
	}
	assert.Equal(t, "a vault is just a folder of markdown files", strings.Join(lines, " "))
}

func TestWrapLongWordGetsOwnLine(t *testing.T) {
	lines := wrap("tiny extraordinarily tiny", 10)
	assert.Contains(t, lines, "extraordinarily")
}

func TestWrapEdgeCases(t *testing.T) {
	assert.Equal(t, []string{""}, wrap("", 20))
	assert.Equal(t, []string{"abc"}, wrap("abc", 0), "non-positive width disables wrapping")
}

func TestTextWidthScales(t *testing.T) {
	assert.Equal(t, 64.0, textWidth("obsidian", 1))
	assert.Equal(t, 96.0, textWidth("obsidian", 1.5))
}
