package seqdiff

// PartDiff groups an edit script into maximal runs of contiguous indices
// per side. Replace entries become Delete on the left and Insert on the
// right.
func PartDiff(es []Entry) []Range {
	var res []Range
	last := [2]int{-1, -1}
	for _, e := range es {
		op := e.Op
		if op == Replace {
			if e.Side == Left {
				op = Delete
			} else {
				op = Insert
			}
		}
		if li := last[e.Side]; li >= 0 {
			r := &res[li]
			if r.End == e.Index && r.Op == op {
				r.End++
				continue
			}
		}
		res = append(res, Range{Start: e.Index, End: e.Index + 1, Side: e.Side, Op: op})
		last[e.Side] = len(res) - 1
	}
	return res
}

// Counts returns the number of left and right entries in es.
func Counts(es []Entry) (left, right int) {
	for _, e := range es {
		if e.Side == Left {
			left++
		} else {
			right++
		}
	}
	return
}
