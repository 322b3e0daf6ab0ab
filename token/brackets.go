package token

import (
	"slices"
)

// FindBracketPairs returns the sorted, non overlapping [start, end)
// spans of bracketed text in d.
//
// Brackets are matched with a stack; a closer that does not match the
// innermost opener is ignored. If openers remain at the end, the
// outermost one is closed just past the last closer seen after it, or
// dropped when there is none. A pair wrapping another with exactly one
// byte on each side, as in "{{...}}", is replaced by the inner pair, and
// overlapping pairs are merged into their union.
func FindBracketPairs(d []byte) [][2]int {
	type opener struct {
		c byte
		i int
	}
	var (
		stack     []opener
		pairs     [][2]int
		lastClose = -1
	)
	for i, c := range d {
		switch c {
		case '{', '[':
			stack = append(stack, opener{c: c, i: i})
		case '}', ']':
			lastClose = i
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			if top.c != openerOf(c) {
				continue
			}
			stack = stack[:len(stack)-1]
			pairs = append(pairs, [2]int{top.i, i + 1})
		}
	}
	if len(stack) != 0 && lastClose > stack[0].i {
		pairs = append(pairs, [2]int{stack[0].i, lastClose + 1})
	}
	return mergePairs(pairs)
}

func openerOf(c byte) byte {
	if c == '}' {
		return '{'
	}
	return '['
}

func mergePairs(pairs [][2]int) [][2]int {
	set := make(map[[2]int]bool, len(pairs))
	for _, p := range pairs {
		set[p] = true
	}
	kept := pairs[:0:0]
	for _, p := range pairs {
		if p[1] <= p[0] {
			continue
		}
		if set[[2]int{p[0] + 1, p[1] - 1}] {
			continue
		}
		kept = append(kept, p)
	}
	slices.SortFunc(kept, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return b[1] - a[1]
	})
	res := make([][2]int, 0, len(kept))
	for _, p := range kept {
		if n := len(res); n > 0 && p[0] < res[n-1][1] {
			res[n-1][1] = max(res[n-1][1], p[1])
			continue
		}
		res = append(res, p)
	}
	return res
}
