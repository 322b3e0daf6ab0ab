// Package tree holds the addressable document model produced by parsing.
//
// A [Tree] is an arena of [Node] values keyed by their stable pointer
// id (see package pointer). Nodes refer to each other only by id, so a
// tree converts losslessly to and from a plain [Snapshot] for transfer
// across process or thread boundaries.
//
// Scalars keep their exact source text in [Node.RawText]; numbers are
// never decoded into a lossy representation unless asked for through
// [Node.Float64], [Node.Int64] or [Node.BigFloat].
//
// Trees are immutable once built: a new parse produces a new tree with
// a higher version.
package tree
