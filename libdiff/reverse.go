package libdiff

// Reverse returns the result of diffing in the other direction: inserts
// become deletes, sides are swapped and replace pairs keep their left
// entry first.
func Reverse(r *Result) *Result {
	res := &Result{Diffs: make([]Diff, 0, len(r.Diffs))}
	for i := 0; i < len(r.Diffs); i++ {
		d := r.Diffs[i]
		if d.Side == Left && i+1 < len(r.Diffs) {
			if next := r.Diffs[i+1]; next.Side == Right && next.Type == d.Type && d.Type != Insert && d.Type != Delete {
				res.Diffs = append(res.Diffs, reverseDiff(next), reverseDiff(d))
				i++
				continue
			}
		}
		res.Diffs = append(res.Diffs, reverseDiff(d))
	}
	for id, rs := range r.TextDiffs {
		if res.TextDiffs == nil {
			res.TextDiffs = make(map[string][]TextRange, len(r.TextDiffs))
		}
		rev := make([]TextRange, 0, len(rs))
		for _, side := range []Side{Right, Left} {
			for _, tr := range rs {
				if tr.Side == side {
					rev = append(rev, TextRange{Start: tr.Start, End: tr.End, Type: tr.Type.Reverse(), Side: side.Reverse()})
				}
			}
		}
		res.TextDiffs[id] = rev
	}
	return res
}

func reverseDiff(d Diff) Diff {
	return Diff{ID: d.ID, Type: d.Type.Reverse(), Side: d.Side.Reverse()}
}
