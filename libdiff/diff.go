package libdiff

import (
	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/tree"
)

// DiffTrees compares left and right. It never fails: nodes that cannot
// be matched, because a snapshot references missing nodes or contains a
// cycle, are reported as a replace of the closest pair that could be
// matched.
func DiffTrees(left, right *tree.Tree, opts ...DiffOption) *Result {
	o := &diffOpts{}
	for _, f := range opts {
		f(o)
	}
	d := &differ{
		l:     left,
		r:     right,
		opts:  o,
		lpath: map[string]bool{},
		rpath: map[string]bool{},
	}
	ln, lok := rootOf(left)
	rn, rok := rootOf(right)
	switch {
	case lok && rok:
		d.pair(ln, rn)
	case lok:
		d.subtree(left, ln, Delete)
	case rok:
		d.subtree(right, rn, Insert)
	}
	res := &Result{Diffs: d.diffs}
	if res.Diffs == nil {
		res.Diffs = []Diff{}
	}
	for _, te := range d.texts {
		if len(te.ranges) == 0 {
			continue
		}
		if res.TextDiffs == nil {
			res.TextDiffs = map[string][]TextRange{}
		}
		res.TextDiffs[te.id] = append(res.TextDiffs[te.id], te.ranges...)
	}
	if debug.Diff() {
		debug.Logf("diff v%d v%d: %s\n", versionOf(left), versionOf(right), res.Stats())
	}
	return res
}

func rootOf(t *tree.Tree) (*tree.Node, bool) {
	if t == nil {
		return nil, false
	}
	return t.Get(t.Root)
}

func versionOf(t *tree.Tree) int64 {
	if t == nil {
		return 0
	}
	return t.Version
}

type textEntry struct {
	id     string
	ranges []TextRange
}

type differ struct {
	l, r  *tree.Tree
	opts  *diffOpts
	diffs []Diff
	texts []textEntry

	// ids of the pairs being compared, per side
	lpath, rpath map[string]bool
}

func (d *differ) emit(lid, rid string, t DiffType) {
	if lid == rid {
		d.diffs = append(d.diffs, Diff{ID: lid, Type: t, Side: Both})
		return
	}
	d.diffs = append(d.diffs,
		Diff{ID: lid, Type: t, Side: Left},
		Diff{ID: rid, Type: t, Side: Right})
}

func (d *differ) pair(l, r *tree.Node) {
	if l.Type != r.Type {
		d.emit(l.ID, r.ID, Replace)
		return
	}
	if l.Type == tree.ArrayType && d.overBudget(len(l.Children)+len(r.Children)) {
		if debug.Diff() {
			debug.Logf("diff %s: %d elements over budget %d\n", l.ID, len(l.Children)+len(r.Children), d.opts.budget)
		}
		d.emit(l.ID, r.ID, Replace)
		return
	}
	mark, tmark := len(d.diffs), len(d.texts)
	switch {
	case !l.Type.IsContainer():
		d.leaf(l, r)
	case d.opts.unchanged:
		d.emit(l.ID, r.ID, None)
	}
	// scalars have children only for trailing content after the root
	if len(l.Children)+len(r.Children) == 0 {
		return
	}
	d.lpath[l.ID], d.rpath[r.ID] = true, true
	var ok bool
	if l.Type == tree.ArrayType {
		ok = d.array(l, r)
	} else {
		ok = d.object(l, r)
	}
	delete(d.lpath, l.ID)
	delete(d.rpath, r.ID)
	if ok {
		return
	}
	if debug.Diff() {
		debug.Logf("diff %s %s: unmatched children, replacing\n", l.ID, r.ID)
	}
	d.diffs, d.texts = d.diffs[:mark], d.texts[:tmark]
	d.emit(l.ID, r.ID, Replace)
}

func (d *differ) overBudget(n int) bool {
	return d.opts.budget > 0 && n > d.opts.budget
}

// children resolves the children of n, failing on missing nodes, cycles
// and repeated ids.
func children(t *tree.Tree, n *tree.Node, path map[string]bool) ([]*tree.Node, bool) {
	res := make([]*tree.Node, 0, len(n.Children))
	seen := make(map[string]bool, len(n.Children))
	for _, id := range n.Children {
		c, ok := t.Nodes[id]
		if !ok || path[id] || seen[id] {
			return nil, false
		}
		seen[id] = true
		res = append(res, c)
	}
	return res, true
}

// subtree reports n and its descendants with the same type.
func (d *differ) subtree(t *tree.Tree, n *tree.Node, typ DiffType) {
	side, path := Left, d.lpath
	if typ == Insert {
		side, path = Right, d.rpath
	}
	seen := map[string]bool{}
	var rec func(*tree.Node)
	rec = func(n *tree.Node) {
		seen[n.ID] = true
		d.diffs = append(d.diffs, Diff{ID: n.ID, Type: typ, Side: side})
		for _, id := range n.Children {
			c, ok := t.Nodes[id]
			if !ok || seen[id] || path[id] {
				continue
			}
			rec(c)
		}
	}
	rec(n)
}
