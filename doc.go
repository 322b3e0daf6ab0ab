// Package jsondoc is a toolkit for JSON documents as they appear in
// editors and logs: possibly broken, possibly duplicated keys, numbers
// that must keep every digit.
//
// Parsing never fails. Every value becomes a node of a [tree.Tree]
// addressed by a stable pointer id such as "$/a/0", and syntax errors
// become error nodes carrying a context window. Two trees are compared
// node by node with [Diff], which classifies ids as inserted, deleted or
// replaced.
//
// The functions here are conveniences over the packages that do the
// work: pointer, token, parse, encode, libdiff, query and worker.
package jsondoc
