package token

import "fmt"

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TNumber
	TTrue
	TFalse
	TNull
	TInvalid
)

var typeNames = map[TokenType]string{
	TLCurl:   "{",
	TRCurl:   "}",
	TLSquare: "[",
	TRSquare: "]",
	TColon:   ":",
	TComma:   ",",
	TString:  "string",
	TNumber:  "number",
	TTrue:    "true",
	TFalse:   "false",
	TNull:    "null",
	TInvalid: "invalid",
}

func (t TokenType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsScalar reports whether t is a complete scalar value.
func (t TokenType) IsScalar() bool {
	switch t {
	case TString, TNumber, TTrue, TFalse, TNull:
		return true
	}
	return false
}

// IsClose reports whether t closes a container.
func (t TokenType) IsClose() bool {
	return t == TRCurl || t == TRSquare
}

type Token struct {
	Type   TokenType
	Offset int
	Bytes  []byte

	// Err is set on TInvalid tokens.
	Err error
}

func (t *Token) End() int {
	return t.Offset + len(t.Bytes)
}

// String returns the decoded value of a string token and the raw text
// of any other token.
func (t *Token) String() string {
	if t.Type == TString {
		s, err := Unquote(t.Bytes)
		if err == nil {
			return s
		}
	}
	return string(t.Bytes)
}
