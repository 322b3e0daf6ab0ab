package seqdiff

import (
	"cmp"
	"slices"

	"github.com/signadot/jsondoc/debug"
)

// Diff returns the edit script turning a into b.
func Diff[T comparable](a, b []T) []Entry {
	return DiffIndex(len(a), len(b), func(i, j int) bool {
		return a[i] == b[j]
	})
}

// DiffFunc is like Diff, comparing elements with eq.
func DiffFunc[T any](a, b []T, eq func(x, y T) bool) []Entry {
	return DiffIndex(len(a), len(b), func(i, j int) bool {
		return eq(a[i], b[j])
	})
}

// DiffIndex computes the edit script between a left sequence of length n
// and a right sequence of length m, where eq(i, j) reports whether left
// element i equals right element j.
//
// The script is minimal: its length is the number of elements not in a
// longest common subsequence of the two sides.
func DiffIndex(n, m int, eq func(i, j int) bool) []Entry {
	d := newDiffer(n, m, eq)
	d.lcs(0, n, 0, m)
	return d.script()
}

// DiffStable is like Diff but independent of argument order: when
// several alignments are minimal, the one chosen for (a, b) is the
// mirror of the one chosen for (b, a). The search always runs with the
// lesser of the two sequences on the left.
func DiffStable[T cmp.Ordered](a, b []T) []Entry {
	if slices.Compare(a, b) <= 0 {
		return Diff(a, b)
	}
	d := newDiffer(len(b), len(a), func(i, j int) bool {
		return b[i] == a[j]
	})
	d.lcs(0, len(b), 0, len(a))
	d.modA, d.modB = d.modB, d.modA
	return d.script()
}

func newDiffer(n, m int, eq func(i, j int) bool) *differ {
	return &differ{
		eq:   eq,
		modA: make([]bool, n),
		modB: make([]bool, m),
	}
}

func (d *differ) script() []Entry {
	es := d.editScript()
	if debug.Myers() {
		debug.Logf("myers n=%d m=%d edits=%d\n", len(d.modA), len(d.modB), len(es))
	}
	return es
}

type differ struct {
	eq         func(i, j int) bool
	modA, modB []bool
}

func (d *differ) lcs(aStart, aEnd, bStart, bEnd int) {
	for aStart < aEnd && bStart < bEnd && d.eq(aStart, bStart) {
		aStart++
		bStart++
	}
	for aStart < aEnd && bStart < bEnd && d.eq(aEnd-1, bEnd-1) {
		aEnd--
		bEnd--
	}
	switch {
	case aStart == aEnd:
		mark(d.modB, bStart, bEnd)
		return
	case bStart == bEnd:
		mark(d.modA, aStart, aEnd)
		return
	}
	x, y, ok := d.middleSnake(aStart, aEnd, bStart, bEnd)
	if !ok {
		mark(d.modA, aStart, aEnd)
		mark(d.modB, bStart, bEnd)
		return
	}
	d.lcs(aStart, x, bStart, y)
	d.lcs(x, aEnd, y, bEnd)
}

func mark(mod []bool, start, end int) {
	for i := start; i < end; i++ {
		mod[i] = true
	}
}

// middleSnake runs the forward and reverse searches until their paths
// overlap and returns the absolute split point on the forward path.
//
// fwd[k] is the furthest x reached on diagonal k = x-y from the start,
// rev[k] the furthest distance reached on diagonal k from the end.
func (d *differ) middleSnake(aStart, aEnd, bStart, bEnd int) (int, int, bool) {
	n, m := aEnd-aStart, bEnd-bStart
	maxD := (n + m + 1) / 2
	delta := n - m
	front := delta%2 != 0
	fwd := map[int]int{1: 0}
	rev := map[int]int{1: 0}
	// trims of the diagonal range once a path runs off the edit graph
	k1start, k1end, k2start, k2end := 0, 0, 0, 0

	for D := 0; D < maxD; D++ {
		for k1 := -D + k1start; k1 <= D-k1end; k1 += 2 {
			var x1 int
			if k1 == -D || (k1 != D && furthest(fwd, k1-1) < furthest(fwd, k1+1)) {
				x1 = furthest(fwd, k1+1)
			} else {
				x1 = furthest(fwd, k1-1) + 1
			}
			y1 := x1 - k1
			for x1 < n && y1 < m && d.eq(aStart+x1, bStart+y1) {
				x1++
				y1++
			}
			fwd[k1] = x1
			switch {
			case x1 > n:
				k1end += 2
			case y1 > m:
				k1start += 2
			case front:
				if x2, ok := rev[delta-k1]; ok && x1 >= n-x2 {
					return aStart + x1, bStart + y1, true
				}
			}
		}
		for k2 := -D + k2start; k2 <= D-k2end; k2 += 2 {
			var x2 int
			if k2 == -D || (k2 != D && furthest(rev, k2-1) < furthest(rev, k2+1)) {
				x2 = furthest(rev, k2+1)
			} else {
				x2 = furthest(rev, k2-1) + 1
			}
			y2 := x2 - k2
			for x2 < n && y2 < m && d.eq(aEnd-x2-1, bEnd-y2-1) {
				x2++
				y2++
			}
			rev[k2] = x2
			switch {
			case x2 > n:
				k2end += 2
			case y2 > m:
				k2start += 2
			case !front:
				k1 := delta - k2
				if x1, ok := fwd[k1]; ok && x1 >= n-x2 {
					return aStart + x1, bStart + x1 - k1, true
				}
			}
		}
	}
	return 0, 0, false
}

func furthest(v map[int]int, k int) int {
	if x, ok := v[k]; ok {
		return x
	}
	return -1
}

func (d *differ) editScript() []Entry {
	var res []Entry
	n, m := len(d.modA), len(d.modB)
	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i < n && j < m && d.modA[i] && d.modB[j]:
			res = append(res,
				Entry{Index: i, Side: Left, Op: Replace},
				Entry{Index: j, Side: Right, Op: Replace})
			i++
			j++
		case i < n && d.modA[i]:
			res = append(res, Entry{Index: i, Side: Left, Op: Delete})
			i++
		case j < m && d.modB[j]:
			res = append(res, Entry{Index: j, Side: Right, Op: Insert})
			j++
		default:
			i++
			j++
		}
	}
	return res
}
