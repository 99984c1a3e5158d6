// Package diff renders a side-by-side line diff for the diff viewer.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// LineType classifies one row of a side
type LineType string

const (
	Added     LineType = "added"
	Removed   LineType = "removed"
	Unchanged LineType = "unchanged"
	Empty     LineType = "empty"
)

// Line is one row on either side. LineNumber is 1-based; filler rows carry 0.
type Line struct {
	LineNumber int      `json:"lineNumber"`
	Content    string   `json:"content"`
	Type       LineType `json:"type"`
}

// Stats counts lines by kind
type Stats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
}

// Result holds both columns; Left and Right always have the same length.
type Result struct {
	Left  []Line `json:"left"`
	Right []Line `json:"right"`
	Stats Stats  `json:"stats"`
}

// Identical reports whether the two inputs had no differing lines
func (r Result) Identical() bool {
	return r.Stats.Added == 0 && r.Stats.Removed == 0
}

var languages = []string{"tsx", "javascript", "json", "python", "css", "html", "rust", "sql", "bash", "plaintext"}

// Languages lists the syntax-highlighting modes offered by the viewer
func Languages() []string {
	out := make([]string, len(languages))
	copy(out, languages)
	return out
}

// splitLines splits on '\n' and drops the empty tail a final newline leaves
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type builder struct {
	res      Result
	leftNum  int
	rightNum int
}

func (b *builder) unchanged(line string) {
	b.leftNum++
	b.rightNum++
	b.res.Left = append(b.res.Left, Line{LineNumber: b.leftNum, Content: line, Type: Unchanged})
	b.res.Right = append(b.res.Right, Line{LineNumber: b.rightNum, Content: line, Type: Unchanged})
	b.res.Stats.Unchanged++
}

func (b *builder) removed(line string) {
	b.leftNum++
	b.res.Left = append(b.res.Left, Line{LineNumber: b.leftNum, Content: line, Type: Removed})
	b.res.Right = append(b.res.Right, Line{Type: Empty})
	b.res.Stats.Removed++
}

func (b *builder) added(line string) {
	b.rightNum++
	b.res.Left = append(b.res.Left, Line{Type: Empty})
	b.res.Right = append(b.res.Right, Line{LineNumber: b.rightNum, Content: line, Type: Added})
	b.res.Stats.Added++
}

// Compute diffs left against right line by line. Replaced hunks list the
// removed lines before the added ones.
func Compute(left, right string) Result {
	a := splitLines(left)
	z := splitLines(right)

	b := &builder{res: Result{Left: []Line{}, Right: []Line{}}}

	m := difflib.NewMatcherWithJunk(a, z, false, nil)
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for _, line := range a[op.I1:op.I2] {
				b.unchanged(line)
			}
		case 'd':
			for _, line := range a[op.I1:op.I2] {
				b.removed(line)
			}
		case 'i':
			for _, line := range z[op.J1:op.J2] {
				b.added(line)
			}
		case 'r':
			for _, line := range a[op.I1:op.I2] {
				b.removed(line)
			}
			for _, line := range z[op.J1:op.J2] {
				b.added(line)
			}
		}
	}

	return b.res
}

// Unified renders a unified diff with the given number of context lines,
// for copying the comparison out of the viewer.
func Unified(left, right string, context int) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(left),
		B:        difflib.SplitLines(right),
		FromFile: "left",
		ToFile:   "right",
		Context:  context,
	})
}
