package token

import (
	"fmt"
	"sort"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// PosDoc maps byte offsets of a document to lines and columns.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the 0 based line and byte column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

// UTF16Col returns the 0 based line and the column of off counted in
// UTF-16 code units.
func (p *PosDoc) UTF16Col(off int) (int, int) {
	line, col := p.LineCol(off)
	start := off - col
	off = min(off, len(p.d))
	n := 0
	for i := start; i < off; {
		r, sz := utf8.DecodeRune(p.d[i:off])
		n += max(utf16.RuneLen(r), 1)
		i += sz
	}
	return line, n
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

// Context returns the text left of [off, off+length), the span itself and
// the text right of it, each cut to at most width bytes on rune
// boundaries. Cut parts are marked with an ellipsis.
func (p *PosDoc) Context(off, length, width int) [3]string {
	d := p.d
	off = max(0, min(off, len(d)))
	end := max(off, min(off+length, len(d)))

	ls := max(0, off-width)
	for ls < off && !utf8.RuneStart(d[ls]) {
		ls++
	}
	left := string(d[ls:off])
	if ls > 0 {
		left = "…" + left
	}
	return [3]string{left, clip(d[off:end], width), clip(d[end:], width)}
}

func clip(d []byte, width int) string {
	if len(d) <= width {
		return string(d)
	}
	e := width
	for e > 0 && !utf8.RuneStart(d[e]) {
		e--
	}
	return string(d[:e]) + "…"
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
