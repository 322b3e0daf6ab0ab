package jsondoc

import (
	"bytes"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/libdiff"
	"github.com/signadot/jsondoc/parse"
	"github.com/signadot/jsondoc/query"
	"github.com/signadot/jsondoc/token"
	"github.com/signadot/jsondoc/tree"
)

func Parse(text string, opts ...parse.ParseOption) *tree.Tree {
	return parse.Parse(text, opts...)
}

// Diff parses both texts and compares the trees.
func Diff(left, right string, opts ...libdiff.DiffOption) *libdiff.Result {
	return libdiff.DiffTrees(parse.Parse(left), parse.Parse(right), opts...)
}

// Patch returns the RFC 6902 operations turning left into right.
func Patch(left, right string) ([]libdiff.PatchOp, error) {
	l, r := parse.Parse(left), parse.Parse(right)
	return libdiff.JSONPatch(libdiff.DiffTrees(l, r), l, r)
}

// Format re-encodes text with the formatting options in opts, pretty
// printing when they ask for it. Error regions are kept as written.
func Format(text string, opts ...parse.ParseOption) (string, error) {
	t := parse.Parse(text, opts...)
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t, buf, parse.EncodeOptions(opts...)...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func FindBracketPairs(text string) [][2]int {
	return token.FindBracketPairs([]byte(text))
}

// Select returns the ids of the nodes of text matching the query expr.
func Select(text, expr string) ([]string, error) {
	q, err := query.Compile(expr)
	if err != nil {
		return nil, err
	}
	nodes, err := q.Select(parse.Parse(text))
	if err != nil {
		return nil, err
	}
	return query.IDs(nodes), nil
}
