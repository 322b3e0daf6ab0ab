package libdiff

import (
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/seqdiff"
	"github.com/signadot/jsondoc/tree"
)

// array aligns elements with a sequence diff over their compact
// encodings. The alignment does not depend on which side is left. Equal elements need no further comparison; replaced ones
// are compared structurally.
func (d *differ) array(l, r *tree.Node) bool {
	lc, ok := children(d.l, l, d.lpath)
	if !ok {
		return false
	}
	rc, ok := children(d.r, r, d.rpath)
	if !ok {
		return false
	}
	lt := compactAll(d.l, lc)
	rt := compactAll(d.r, rc)
	es := seqdiff.DiffStable(lt, rt)
	n, m := len(lc), len(rc)
	i, j := 0, 0
	for k := 0; k <= len(es); k++ {
		ti, tj := n, m
		if k < len(es) {
			if e := es[k]; e.Side == seqdiff.Left {
				ti, tj = e.Index, j+e.Index-i
			} else {
				ti, tj = i+e.Index-j, e.Index
			}
		}
		for ; i < ti && j < tj; i, j = i+1, j+1 {
			if d.opts.unchanged {
				d.pair(lc[i], rc[j])
			}
		}
		if k == len(es) {
			break
		}
		switch es[k].Op {
		case seqdiff.Replace:
			d.pair(lc[i], rc[j])
			i, j = i+1, j+1
			k++
		case seqdiff.Delete:
			d.subtree(d.l, lc[i], Delete)
			i++
		case seqdiff.Insert:
			d.subtree(d.r, rc[j], Insert)
			j++
		}
	}
	return true
}

func compactAll(t *tree.Tree, ns []*tree.Node) []string {
	res := make([]string, len(ns))
	for i, n := range ns {
		res[i] = encode.Compact(t, n.ID)
	}
	return res
}
