// Package token provides a fault tolerant JSON tokenizer.
//
// [Tokenize] never fails: bytes that cannot start a token are grouped
// into [TInvalid] tokens carrying the reason in [Token.Err], so a parser
// can recover and keep going. Every token keeps its raw source slice.
//
// [FindBracketPairs] locates bracketed spans in arbitrary text without
// regard to JSON syntax, for recovering embedded documents from logs and
// similar surroundings.
package token
