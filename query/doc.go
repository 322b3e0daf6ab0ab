// Package query selects tree nodes with boolean expressions.
//
// Expressions are compiled with expr-lang against [Env], which describes
// one node: its id and path, kind, key, depth, raw text, decoded value,
// byte span, child count and error message. The functions at, number
// and parent are available in every expression:
//
//	kind == "number" && value > 10
//	depth == 1 && key startsWith "x-"
//	kind == "error" && offset < 100
//	at(parent(id)) == "[1,2]"
//
// [Query.Select] evaluates a compiled query on every reachable node of
// a tree and returns the matches in document order.
package query
