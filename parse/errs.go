package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jsondoc/token"
)

var (
	ErrParse = errors.New("parse error")

	ErrEmptyDoc      = fmt.Errorf("%w: empty document", ErrParse)
	ErrUnexpectedEOF = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrTrailingComma = fmt.Errorf("%w: trailing comma", ErrParse)
	ErrTrailing      = fmt.Errorf("%w: unexpected content after document", ErrParse)
)

func unexpectedErr(tok *token.Token) error {
	if tok.Type == token.TInvalid && tok.Err != nil {
		return fmt.Errorf("%w: %w %q", ErrParse, tok.Err, clipRaw(tok.Bytes))
	}
	return fmt.Errorf("%w: unexpected %s", ErrParse, tok.Type)
}

func expectedErr(what string, tok *token.Token) error {
	if tok == nil {
		return fmt.Errorf("%w: expected %s, got end of input", ErrParse, what)
	}
	return fmt.Errorf("%w: expected %s, got %s", ErrParse, what, tok.Type)
}

func unclosedErr(what string) error {
	return fmt.Errorf("%w: unclosed %s", ErrParse, what)
}

func clipRaw(d []byte) string {
	if len(d) > 16 {
		return string(d[:16]) + "…"
	}
	return string(d)
}
