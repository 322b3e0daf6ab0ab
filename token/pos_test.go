package token

import (
	"testing"
)

func TestLineCol(t *testing.T) {
	pd := NewPosDoc([]byte("ab\ncd\n\nx"))
	tests := []struct{ off, line, col int }{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
		{7, 3, 0},
	}
	for _, tc := range tests {
		l, c := pd.LineCol(tc.off)
		if l != tc.line || c != tc.col {
			t.Errorf("LineCol(%d) = %d,%d want %d,%d", tc.off, l, c, tc.line, tc.col)
		}
	}
}

func TestUTF16Col(t *testing.T) {
	d := []byte("x\n€😀z")
	pd := NewPosDoc(d)
	// € is 3 bytes, 1 unit; 😀 is 4 bytes, 2 units
	l, c := pd.UTF16Col(2 + 3 + 4)
	if l != 1 || c != 3 {
		t.Errorf("got %d,%d", l, c)
	}
}

func TestContext(t *testing.T) {
	d := []byte(`{"alpha": 1, "beta": @@@, "gamma": 3}`)
	pd := NewPosDoc(d)
	ctx := pd.Context(21, 3, 8)
	want := [3]string{`…"beta": `, "@@@", `, "gamma…`}
	if ctx != want {
		t.Errorf("got %q want %q", ctx, want)
	}
	ctx = pd.Context(0, 1, 100)
	if ctx[0] != "" || ctx[1] != "{" || ctx[2] != string(d[1:]) {
		t.Errorf("got %q", ctx)
	}
}
