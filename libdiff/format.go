package libdiff

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/pointer"
	"github.com/signadot/jsondoc/tree"
)

const previewWidth = 40

type formatOpts struct {
	colors bool
	width  int
}

type FormatOption func(*formatOpts)

func FormatColors(v bool) FormatOption {
	return func(o *formatOpts) { o.colors = v }
}

// FormatWidth bounds the value previews, in runes.
func FormatWidth(n int) FormatOption {
	return func(o *formatOpts) {
		if n > 0 {
			o.width = n
		}
	}
}

// FormatPretty writes one line per change of r. Inserted and deleted
// subtrees are listed by their top node only.
//
//	+ $/2: 3
//	- $/b: {"x":1}
//	~ $/a: 1 => 2
//	~ $/3/x => $/2/x: "u" => "v"
func FormatPretty(w io.Writer, r *Result, left, right *tree.Tree, opts ...FormatOption) error {
	o := &formatOpts{width: previewWidth}
	for _, f := range opts {
		f(o)
	}
	ins, del, rep := color.New(color.FgGreen), color.New(color.FgRed), color.New(color.FgYellow)
	if !o.colors {
		ins.DisableColor()
		del.DisableColor()
		rep.DisableColor()
	}
	bw := bufio.NewWriter(w)
	top := map[Side]map[string]bool{Left: {}, Right: {}}
	covered := func(d Diff) bool {
		top[d.Side][d.ID] = true
		p, ok := pointer.Parent(d.ID)
		return ok && top[d.Side][p]
	}
	preview := func(t *tree.Tree, id string) string {
		return clipRunes(encode.Compact(t, id), o.width)
	}
	for i := 0; i < len(r.Diffs); i++ {
		d := r.Diffs[i]
		switch d.Type {
		case Insert:
			if covered(d) {
				continue
			}
			ins.Fprintf(bw, "+ %s: %s\n", d.ID, preview(right, d.ID))
		case Delete:
			if covered(d) {
				continue
			}
			del.Fprintf(bw, "- %s: %s\n", d.ID, preview(left, d.ID))
		case Replace:
			if d.Side == Both {
				rep.Fprintf(bw, "~ %s: %s => %s\n", d.ID, preview(left, d.ID), preview(right, d.ID))
				continue
			}
			rid := d.ID
			if i+1 < len(r.Diffs) && r.Diffs[i+1].Side == Right {
				rid = r.Diffs[i+1].ID
				i++
			}
			rep.Fprintf(bw, "~ %s => %s: %s => %s\n", d.ID, rid, preview(left, d.ID), preview(right, rid))
		}
	}
	return bw.Flush()
}

func clipRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	rs := []rune(s)
	return string(rs[:n]) + "…"
}
