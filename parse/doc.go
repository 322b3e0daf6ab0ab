// Package parse builds a [tree.Tree] from JSON text.
//
// [Parse] never fails. Input that cannot continue the current production
// becomes an error node spanning the offending text up to the next token
// where parsing can resume (a comma or closing bracket of an enclosing
// container, or the end of input), so the rest of the document is still
// available. Each error node carries a window with previews of the text
// around it.
//
// Error members that are not tied to a key, such as stray tokens where a
// key is expected or a trailing comma, are addressed by the synthetic
// segment "$<offset>". Duplicate object keys are all kept: the last
// occurrence owns the plain id and earlier ones are addressed as
// "key$N".
//
// With [ParseNest], string leaves whose content is itself a JSON object
// or array are parsed into the tree's NestNodeMap.
package parse
