package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokTest struct {
	in    string
	types []TokenType
}

func tokTypes(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []tokTest{
		{in: ``, types: []TokenType{}},
		{in: `{"a": [1, -2.5e3, true, false, null]}`, types: []TokenType{
			TLCurl, TString, TColon, TLSquare, TNumber, TComma, TNumber, TComma,
			TTrue, TComma, TFalse, TComma, TNull, TRSquare, TRCurl,
		}},
		{in: "\ufeff 1", types: []TokenType{TNumber}},
		{in: `{a:1}`, types: []TokenType{TLCurl, TInvalid, TColon, TNumber, TRCurl}},
		{in: `[01, 1., .5, -, 1e]`, types: []TokenType{
			TLSquare, TInvalid, TComma, TInvalid, TComma, TInvalid, TComma, TInvalid, TComma, TInvalid, TRSquare,
		}},
		{in: "\"abc\n1", types: []TokenType{TInvalid, TNumber}},
		{in: `"a\qb" 2`, types: []TokenType{TInvalid, TNumber}},
		{in: `nul truex`, types: []TokenType{TInvalid, TInvalid}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := tokTypes(Tokenize([]byte(tc.in)))
			if diff := cmp.Diff(tc.types, got); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}
		})
	}
}

func TestTokenizeRaw(t *testing.T) {
	in := `{ "array": [12345678987654321, 0.1234567891111111111] }`
	toks := Tokenize([]byte(in))
	num := toks[4]
	if num.Type != TNumber || string(num.Bytes) != "12345678987654321" || num.Offset != 12 {
		t.Errorf("got %v %q at %d", num.Type, num.Bytes, num.Offset)
	}
	if got := string(toks[6].Bytes); got != "0.1234567891111111111" {
		t.Errorf("got %q", got)
	}
	for _, tok := range toks {
		if string(tok.Bytes) != in[tok.Offset:tok.End()] {
			t.Errorf("token %q does not match source at %d", tok.Bytes, tok.Offset)
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	tests := []struct {
		in  string
		err error
		raw string
	}{
		{in: `01`, err: ErrNumberLeadingZero, raw: `01`},
		{in: `1.`, err: ErrNumber, raw: `1.`},
		{in: `"a\qb" x`, err: ErrBadEscape, raw: `"a\qb"`},
		{in: "\"ab\ncd\"", err: ErrUnicodeControl, raw: `"ab`},
		{in: `"abc`, err: ErrUnterminated, raw: `"abc`},
		{in: `"\u12zz"`, err: ErrBadUnicode, raw: `"\u12zz"`},
		{in: `@`, err: ErrLiteral, raw: `@`},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			tok := Tokenize([]byte(tc.in))[0]
			if tok.Type != TInvalid {
				t.Fatalf("got type %s", tok.Type)
			}
			if !errors.Is(tok.Err, tc.err) {
				t.Errorf("got err %v want %v", tok.Err, tc.err)
			}
			if string(tok.Bytes) != tc.raw {
				t.Errorf("got raw %q want %q", tok.Bytes, tc.raw)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct{ in, out string }{
		{"abc", `"abc"`},
		{`a"b`, `"a\"b"`},
		{"t\tn\n", `"t\tn\n"`},
		{"\x01", `"\u0001"`},
		{"∞", `"∞"`},
	}
	for _, tc := range tests {
		if got := Quote(tc.in); got != tc.out {
			t.Errorf("Quote(%q) = %s want %s", tc.in, got, tc.out)
		}
		back, err := Unquote([]byte(tc.out))
		if err != nil {
			t.Fatal(err)
		}
		if back != tc.in {
			t.Errorf("Unquote(%s) = %q want %q", tc.out, back, tc.in)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct{ in, out string }{
		{`"∞"`, "∞"},
		{`"\ud83d\ude00"`, "😀"},
		{`"a\/b"`, "a/b"},
		{`"\\\""`, `\"`},
	}
	for _, tc := range tests {
		got, err := Unquote([]byte(tc.in))
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.out {
			t.Errorf("Unquote(%s) = %q want %q", tc.in, got, tc.out)
		}
	}
	if _, err := Unquote([]byte(`"ab" `)); !errors.Is(err, ErrUnterminated) {
		t.Errorf("trailing bytes: got %v", err)
	}
}
