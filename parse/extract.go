package parse

import (
	"github.com/signadot/jsondoc/token"
	"github.com/signadot/jsondoc/tree"
)

// Extracted is a document recovered from surrounding text.
type Extracted struct {
	Start, End int
	Tree       *tree.Tree
}

// Extract parses every bracketed span of text, as found by
// token.FindBracketPairs, as its own document. Offsets in each tree are
// relative to Start.
func Extract(text string, opts ...ParseOption) []Extracted {
	spans := token.FindBracketPairs([]byte(text))
	res := make([]Extracted, 0, len(spans))
	for _, sp := range spans {
		res = append(res, Extracted{
			Start: sp[0],
			End:   sp[1],
			Tree:  Parse(text[sp[0]:sp[1]], opts...),
		})
	}
	return res
}
