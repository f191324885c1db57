package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// Unified renders a line-based unified diff between before and after.
// Returns an empty string if the inputs are identical. Output longer than
// maxDiffLines is cut and terminated with a truncation marker.
func Unified(before, after, beforeLabel, afterLabel string) string {
	if before == after {
		return ""
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(ensureNewline(before)),
		B:        difflib.SplitLines(ensureNewline(after)),
		FromFile: beforeLabel,
		ToFile:   afterLabel,
		Context:  2,
	}
	out, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return ""
	}

	lines := strings.Split(out, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return out
}

// Summary counts the characters inserted and deleted between two strings.
type Summary struct {
	Insertions int
	Deletions  int
	Hunks      int
}

// Changed reports whether any edit was found.
func (s Summary) Changed() bool {
	return s.Insertions > 0 || s.Deletions > 0
}

// Summarize computes a character-level edit summary of before → after.
func Summarize(before, after string) Summary {
	if before == after {
		return Summary{}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var s Summary
	inHunk := false
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Insertions += len([]rune(d.Text))
		case diffmatchpatch.DiffDelete:
			s.Deletions += len([]rune(d.Text))
		case diffmatchpatch.DiffEqual:
			inHunk = false
			continue
		}
		if !inHunk {
			s.Hunks++
			inHunk = true
		}
	}
	return s
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
