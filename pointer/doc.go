// Package pointer builds and parses the stable node identifiers used by
// trees and diffs.
//
// An identifier is the root marker "$" followed by one "/"-prefixed,
// escaped segment per path step, e.g. "$/a/b/0" for the path
// ["a", "b", 0]. Escaping maps "~" to "~0" and "/" to "~1" and then
// percent encodes quotes, whitespace, "&", "$" and "%", so a segment
// never contains a raw "$".
//
// Segments containing a raw "$" are synthetic. "key$N" addresses an
// earlier occurrence of a duplicated object key and "$N" an error member
// at byte offset N; see [Occurrence] and [ErrorSegment].
package pointer
