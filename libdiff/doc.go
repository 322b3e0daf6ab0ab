// Package libdiff compares two parsed documents node by node.
//
// # Usage
//
//	res := libdiff.DiffTrees(left, right, libdiff.WithTextCompare(true))
//	for _, d := range res.Diffs {
//		fmt.Println(d.ID, d.Type)
//	}
//
// Nodes are matched by path: object members by key, array elements by a
// Myers alignment of their compact encodings. Every node that differs is
// reported once with its classification, insert for nodes only on the
// right, delete for nodes only on the left, and replace for matched
// nodes whose type or raw text differs. Inserted and deleted subtrees
// are reported node by node.
//
// Matched nodes normally share an id. When an array element moves, the
// two sides have different ids and a replace is reported as a pair of
// entries, one per side.
//
// A result can be reversed with [Reverse], summarized with
// [Result.Stats], listed with [FormatPretty] and exported as an RFC 6902
// patch with [JSONPatch].
package libdiff
