package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnified_IdenticalContent(t *testing.T) {
	text := "line1\nline2\nline3\n"
	assert.Empty(t, Unified(text, text, "before", "after"))
	assert.False(t, Count(text, text).Changed())
}

func TestUnified_SingleLineChange(t *testing.T) {
	result := Unified("line1\nline2\nline3\n", "line1\nmodified\nline3\n", "old.yaml", "new.yaml")

	require.NotEmpty(t, result)
	assert.Contains(t, result, "--- old.yaml\n+++ new.yaml\n")
	assert.Contains(t, result, "@@ -1,3 +1,3 @@")
	assert.Contains(t, result, " line1\n")
	assert.Contains(t, result, "-line2\n")
	assert.Contains(t, result, "+modified\n")
	assert.Contains(t, result, " line3\n")
}

func TestLines_WholeLinesOnly(t *testing.T) {
	lines := Lines("Drop-Off Point\nFinancial Aid\n", "Drop-Off Point\nFinancial Aid (verified)\n")

	require.Equal(t, []Line{
		{Op: Equal, Text: "Drop-Off Point"},
		{Op: Removed, Text: "Financial Aid"},
		{Op: Added, Text: "Financial Aid (verified)"},
	}, lines)
}

func TestCount(t *testing.T) {
	stats := Count("a\nb\nc\n", "a\nc\nd\ne\n")

	assert.Equal(t, Stats{Added: 2, Removed: 1}, stats)
	assert.True(t, stats.Changed())
	assert.Equal(t, "+2 -1", stats.String())
}

func TestUnified_EmptySides(t *testing.T) {
	result := Unified("", "only\n", "before", "after")
	assert.Contains(t, result, "@@ -1,0 +1,1 @@")
	assert.Contains(t, result, "+only\n")
}

func TestUnified_Truncates(t *testing.T) {
	var before, after strings.Builder
	for i := 0; i < maxDiffLines+10; i++ {
		before.WriteString("a\n")
		after.WriteString("b\n")
	}

	result := Unified(before.String(), after.String(), "before", "after")
	assert.Contains(t, result, truncateMessage)
	assert.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+1)
}
