// Package encode writes trees back out as JSON text.
//
// The default output is compact and canonical: no insignificant
// whitespace, scalars written exactly as they appeared in the source and
// keys re-quoted from their decoded form. [Compact] of a node is the
// comparison token used when aligning array elements.
//
// [EncodePretty] indents the output; with [EncodeMaxWidth] containers
// that fit on the current line are kept inline. [EncodeSort] orders
// object members by key. Error nodes are written as their raw text.
package encode
