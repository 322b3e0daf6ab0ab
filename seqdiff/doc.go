// Package seqdiff computes minimal edit scripts between two sequences
// with the Myers O(ND) divide and conquer algorithm.
//
// [DiffIndex] is the core: it compares index ranges through an equality
// callback, so it has no knowledge of element types. [Diff] and
// [DiffFunc] are typed conveniences over it.
//
// The edit script lists modified elements only. An element modified on
// both sides at the same step of the walk is reported as a [Replace]
// pair; [PartDiff] groups a script into contiguous ranges for rendering,
// where a replace always shows as a delete on the left and an insert on
// the right.
//
// Callers bound the input size; there is no timeout.
package seqdiff
