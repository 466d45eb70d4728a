package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Op marks how a line changed between two renderings.
type Op int

const (
	Equal Op = iota
	Removed
	Added
)

// Line is one line of a line-level comparison.
type Line struct {
	Op   Op
	Text string
}

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// Lines compares before and after line by line.
func Lines(before, after string) []Line {
	if before == after {
		return equalLines(before)
	}

	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)

	var out []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Removed
		case diffmatchpatch.DiffInsert:
			op = Added
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Op: op, Text: text})
		}
	}
	return out
}

// Count summarises the changed lines between before and after.
func Count(before, after string) Stats {
	var s Stats
	if before == after {
		return s
	}
	for _, l := range Lines(before, after) {
		switch l.Op {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		}
	}
	return s
}

// Unified renders a unified-style diff of two texts. It returns an empty
// string when they are identical and truncates very long output.
func Unified(before, after, beforeLabel, afterLabel string) string {
	if before == after {
		return ""
	}

	lines := Lines(before, after)
	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", len(splitLines(before)), len(splitLines(after)))

	written := 3
	for _, l := range lines {
		if written >= maxDiffLines {
			buf.WriteString(truncateMessage)
			buf.WriteString("\n")
			break
		}
		switch l.Op {
		case Equal:
			buf.WriteString(" ")
		case Removed:
			buf.WriteString("-")
		case Added:
			buf.WriteString("+")
		}
		buf.WriteString(l.Text)
		buf.WriteString("\n")
		written++
	}
	return buf.String()
}

func equalLines(text string) []Line {
	var out []Line
	for _, t := range splitLines(text) {
		out = append(out, Line{Op: Equal, Text: t})
	}
	return out
}

// splitLines drops the empty element produced by a trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
