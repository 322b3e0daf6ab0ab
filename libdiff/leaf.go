package libdiff

import (
	"github.com/signadot/jsondoc/seqdiff"
	"github.com/signadot/jsondoc/tree"
)

// leaf compares scalars, and error nodes, by raw text.
func (d *differ) leaf(l, r *tree.Node) {
	if l.RawText == r.RawText {
		if d.opts.unchanged {
			d.emit(l.ID, r.ID, None)
		}
		return
	}
	d.emit(l.ID, r.ID, Replace)
	if d.opts.text && (l.Type == tree.StringType || l.Type == tree.NumberType) {
		d.text(l, r)
	}
}

func (d *differ) text(l, r *tree.Node) {
	a, b := []rune(l.RawText), []rune(r.RawText)
	if d.overBudget(len(a) + len(b)) {
		return
	}
	ao, bo := runeOffsets(l.RawText), runeOffsets(r.RawText)
	var lr, rr []TextRange
	for _, rg := range seqdiff.PartDiff(seqdiff.DiffStable(a, b)) {
		if rg.Side == seqdiff.Left {
			lr = append(lr, TextRange{
				Start: l.Offset + ao[rg.Start],
				End:   l.Offset + ao[rg.End],
				Type:  Delete,
				Side:  Left,
			})
			continue
		}
		rr = append(rr, TextRange{
			Start: r.Offset + bo[rg.Start],
			End:   r.Offset + bo[rg.End],
			Type:  Insert,
			Side:  Right,
		})
	}
	d.texts = append(d.texts, textEntry{id: l.ID, ranges: lr}, textEntry{id: r.ID, ranges: rr})
}

// runeOffsets maps rune indices of s, and len(s) at the end, to byte
// offsets.
func runeOffsets(s string) []int {
	res := make([]int, 0, len(s)+1)
	for i := range s {
		res = append(res, i)
	}
	return append(res, len(s))
}
