package token

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote returns v as a JSON string literal.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for i := 0; i < len(v); {
		r, sz := utf8.DecodeRuneInString(v[i:])
		if r == utf8.RuneError && sz == 1 {
			d = append(d, "\ufffd"...)
			i++
			continue
		}
		i += sz
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 || r == 0x7f {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes a complete JSON string literal.
func Unquote(d []byte) (string, error) {
	n, err := scanString(d)
	if err != nil {
		return "", err
	}
	if n != len(d) {
		return "", ErrUnterminated
	}
	return quotedToString(d), nil
}

// scanString scans the string literal at the start of d, which begins
// with '"'. It returns the length of the literal including both quotes.
// On error the length is where scanning stopped.
func scanString(d []byte) (int, error) {
	escaped := false
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return i, ErrBadUTF8
		}
		i += sz
		if escaped {
			escaped = false
			switch r {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if i+4 > n {
					return n, ErrUnterminated
				}
				if !allHex(d[i : i+4]) {
					return i, ErrBadUnicode
				}
				i += 4
			default:
				return i, ErrBadEscape
			}
			continue
		}
		switch {
		case r == '"':
			return i, nil
		case r == '\\':
			escaped = true
		case r < 0x20:
			return i - sz, ErrUnicodeControl
		}
	}
	return n, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if !isHex(c) {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// quotedToString decodes a literal already validated by scanString.
func quotedToString(d []byte) string {
	inner := d[1 : len(d)-1]
	if !strings.ContainsRune(string(inner), '\\') {
		return string(inner)
	}
	b := &strings.Builder{}
	for i := 0; i < len(inner); {
		c := inner[i]
		if c != '\\' {
			r, sz := utf8.DecodeRune(inner[i:])
			b.WriteRune(r)
			i += sz
			continue
		}
		i++
		switch inner[i] {
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r := hex4(inner[i+1 : i+5])
			i += 4
			if utf16.IsSurrogate(r) && i+7 <= len(inner) && inner[i+1] == '\\' && inner[i+2] == 'u' {
				if r2 := utf16.DecodeRune(r, hex4(inner[i+3:i+7])); r2 != utf8.RuneError {
					r = r2
					i += 6
				}
			}
			b.WriteRune(r)
		default:
			// '"', '\\' and '/'
			b.WriteByte(inner[i])
		}
		i++
	}
	return b.String()
}

func hex4(d []byte) rune {
	v, _ := strconv.ParseUint(string(d), 16, 32)
	return rune(v)
}
