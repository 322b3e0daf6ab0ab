package libdiff

import (
	"github.com/signadot/jsondoc/pointer"
	"github.com/signadot/jsondoc/tree"
)

// object matches members by their last id segment, so that duplicate
// key occurrences and error members pair with their counterparts. Left
// members come first in left order, then members only on the right.
func (d *differ) object(l, r *tree.Node) bool {
	lc, ok := children(d.l, l, d.lpath)
	if !ok {
		return false
	}
	rc, ok := children(d.r, r, d.rpath)
	if !ok {
		return false
	}
	rm := make(map[string]*tree.Node, len(rc))
	for _, c := range rc {
		seg, _ := pointer.LastSegment(c.ID)
		rm[seg] = c
	}
	matched := make(map[string]bool, len(lc))
	for _, c := range lc {
		seg, _ := pointer.LastSegment(c.ID)
		matched[seg] = true
		if rn, ok := rm[seg]; ok {
			d.pair(c, rn)
			continue
		}
		d.subtree(d.l, c, Delete)
	}
	for _, c := range rc {
		seg, _ := pointer.LastSegment(c.ID)
		if !matched[seg] {
			d.subtree(d.r, c, Insert)
		}
	}
	return true
}
