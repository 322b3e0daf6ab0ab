package token

import "bytes"

var bom = []byte{0xef, 0xbb, 0xbf}

// Tokenize splits d into tokens. Whitespace is dropped and a leading
// byte order mark is skipped.
func Tokenize(d []byte) []Token {
	toks := make([]Token, 0, len(d)/4)
	i := 0
	if bytes.HasPrefix(d, bom) {
		i = len(bom)
	}
	for i < len(d) {
		c := d[i]
		if isSpace(c) {
			i++
			continue
		}
		if tt, ok := punct(c); ok {
			toks = append(toks, Token{Type: tt, Offset: i, Bytes: d[i : i+1]})
			i++
			continue
		}
		if c == '"' {
			n, err := scanString(d[i:])
			if err != nil {
				n = stringExtent(d[i:])
				toks = append(toks, Token{Type: TInvalid, Offset: i, Bytes: d[i : i+n], Err: err})
			} else {
				toks = append(toks, Token{Type: TString, Offset: i, Bytes: d[i : i+n]})
			}
			i += n
			continue
		}
		n := word(d[i:])
		toks = append(toks, wordToken(d[i:i+n], i))
		i += n
	}
	return toks
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func punct(c byte) (TokenType, bool) {
	switch c {
	case '{':
		return TLCurl, true
	case '}':
		return TRCurl, true
	case '[':
		return TLSquare, true
	case ']':
		return TRSquare, true
	case ':':
		return TColon, true
	case ',':
		return TComma, true
	}
	return 0, false
}

func isDelim(c byte) bool {
	if isSpace(c) || c == '"' {
		return true
	}
	_, ok := punct(c)
	return ok
}

// stringExtent bounds a malformed string literal: through its closing
// quote if one occurs on the same line, otherwise up to the line end.
func stringExtent(d []byte) int {
	esc := false
	for i := 1; i < len(d); i++ {
		c := d[i]
		switch {
		case c == '\n':
			return i
		case esc:
			esc = false
		case c == '\\':
			esc = true
		case c == '"':
			return i + 1
		}
	}
	return len(d)
}

func word(d []byte) int {
	i := 0
	for i < len(d) && !isDelim(d[i]) {
		i++
	}
	return i
}

func wordToken(w []byte, off int) Token {
	tok := Token{Offset: off, Bytes: w}
	switch string(w) {
	case "true":
		tok.Type = TTrue
		return tok
	case "false":
		tok.Type = TFalse
		return tok
	case "null":
		tok.Type = TNull
		return tok
	}
	if w[0] == '-' || asciiDigit(w[0]) {
		n, err := number(w)
		if err == nil && n == len(w) {
			tok.Type = TNumber
			return tok
		}
		if err == nil {
			err = ErrNumber
		}
		tok.Type = TInvalid
		tok.Err = err
		return tok
	}
	tok.Type = TInvalid
	tok.Err = ErrLiteral
	return tok
}
