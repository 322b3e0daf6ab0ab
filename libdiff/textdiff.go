package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one line of a line diff; Type is None, Insert or Delete.
type Line struct {
	Type DiffType `json:"diffType"`
	Text string   `json:"text"`
}

// TextDiff computes a line diff of two texts, typically pretty printed
// documents.
func TextDiff(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for _, d := range diffs {
		typ := None
		switch d.Type {
		case diffpatch.DiffInsert:
			typ = Insert
		case diffpatch.DiffDelete:
			typ = Delete
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Type: typ, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// FormatLines renders lines with "+ ", "- " and "  " prefixes.
func FormatLines(lines []Line) string {
	var b strings.Builder
	for _, ln := range lines {
		switch ln.Type {
		case Insert:
			b.WriteString("+ ")
		case Delete:
			b.WriteString("- ")
		default:
			b.WriteString("  ")
		}
		b.WriteString(ln.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
