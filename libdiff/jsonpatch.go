package libdiff

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/pointer"
	"github.com/signadot/jsondoc/tree"
)

// PatchOp is an RFC 6902 operation.
type PatchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// JSONPatch converts r, the result of diffing left and right, into
// operations turning left into right.
//
// Removals come first, deepest and last first, at left paths. Adds and
// replaces follow in right document order at right paths: once the
// removals are done, every array holds its kept elements in order, so
// each add lands at its final index.
//
// Documents with syntax errors or duplicate keys have no JSON Patch
// form and yield ErrPatch.
func JSONPatch(r *Result, left, right *tree.Tree) ([]PatchOp, error) {
	for _, t := range []*tree.Tree{left, right} {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: document has %d syntax errors", ErrPatch, len(t.Errors))
		}
	}
	lorder, rorder := docOrder(left), docOrder(right)
	var removes, updates []Diff
	top := map[Side]map[string]bool{Left: {}, Right: {}}
	for _, d := range r.Diffs {
		switch d.Type {
		case Insert, Delete:
			top[d.Side][d.ID] = true
			if p, ok := pointer.Parent(d.ID); ok && top[d.Side][p] {
				continue
			}
			if d.Type == Delete {
				removes = append(removes, d)
			} else {
				updates = append(updates, d)
			}
		case Replace:
			if d.Side != Left {
				updates = append(updates, d)
			}
		}
	}
	slices.SortFunc(removes, func(a, b Diff) int { return lorder[b.ID] - lorder[a.ID] })
	slices.SortFunc(updates, func(a, b Diff) int { return rorder[a.ID] - rorder[b.ID] })

	res := make([]PatchOp, 0, len(removes)+len(updates))
	for _, d := range removes {
		p, err := jsonPointer(d.ID)
		if err != nil {
			return nil, err
		}
		res = append(res, PatchOp{Op: "remove", Path: p})
	}
	for _, d := range updates {
		p, err := jsonPointer(d.ID)
		if err != nil {
			return nil, err
		}
		op := "replace"
		if d.Type == Insert {
			op = "add"
		}
		res = append(res, PatchOp{Op: op, Path: p, Value: json.RawMessage(encode.Compact(right, d.ID))})
	}
	return res, nil
}

func jsonPointer(id string) (string, error) {
	p, err := pointer.ToJSONPointer(id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return p, nil
}

func docOrder(t *tree.Tree) map[string]int {
	ns := t.InOrder()
	res := make(map[string]int, len(ns))
	for i, n := range ns {
		res[n.ID] = i
	}
	return res
}
