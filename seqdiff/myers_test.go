package seqdiff

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type myersTest struct {
	a, b string
	want []Entry
}

func TestDiff(t *testing.T) {
	tests := []myersTest{
		{a: "", b: "", want: nil},
		{a: "abc", b: "abc", want: nil},
		{a: "", b: "ab", want: []Entry{
			{Index: 0, Side: Right, Op: Insert},
			{Index: 1, Side: Right, Op: Insert},
		}},
		{a: "ab", b: "", want: []Entry{
			{Index: 0, Side: Left, Op: Delete},
			{Index: 1, Side: Left, Op: Delete},
		}},
		{a: "12", b: "123", want: []Entry{
			{Index: 2, Side: Right, Op: Insert},
		}},
		{a: "x", b: "y", want: []Entry{
			{Index: 0, Side: Left, Op: Replace},
			{Index: 0, Side: Right, Op: Replace},
		}},
		{a: "123", b: "425", want: []Entry{
			{Index: 0, Side: Left, Op: Replace},
			{Index: 0, Side: Right, Op: Replace},
			{Index: 2, Side: Left, Op: Replace},
			{Index: 2, Side: Right, Op: Replace},
		}},
		{a: "abcd", b: "acd", want: []Entry{
			{Index: 1, Side: Left, Op: Delete},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.a+"->"+tc.b, func(t *testing.T) {
			got := Diff([]rune(tc.a), []rune(tc.b))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}
		})
	}
}

func TestDiffFunc(t *testing.T) {
	a := []string{"A", "b", "C"}
	b := []string{"a", "B", "c", "d"}
	es := DiffFunc(a, b, func(x, y string) bool {
		return x[0]|0x20 == y[0]|0x20
	})
	want := []Entry{{Index: 3, Side: Right, Op: Insert}}
	if diff := cmp.Diff(want, es); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

// checkScript verifies that removing the left entries from a and the
// right entries from b leaves the same sequence, and that the script
// has the minimal length.
func checkScript[T comparable](t *testing.T, a, b []T, es []Entry) {
	t.Helper()
	dropA := map[int]bool{}
	dropB := map[int]bool{}
	lastA, lastB := -1, -1
	for _, e := range es {
		switch e.Side {
		case Left:
			if e.Op == Insert {
				t.Fatalf("insert on left side: %+v", e)
			}
			if e.Index <= lastA {
				t.Fatalf("left entries out of order: %+v", es)
			}
			lastA = e.Index
			dropA[e.Index] = true
		case Right:
			if e.Op == Delete {
				t.Fatalf("delete on right side: %+v", e)
			}
			if e.Index <= lastB {
				t.Fatalf("right entries out of order: %+v", es)
			}
			lastB = e.Index
			dropB[e.Index] = true
		}
	}
	var keptA, keptB []T
	for i, x := range a {
		if !dropA[i] {
			keptA = append(keptA, x)
		}
	}
	for j, y := range b {
		if !dropB[j] {
			keptB = append(keptB, y)
		}
	}
	if diff := cmp.Diff(keptA, keptB); diff != "" {
		t.Fatalf("common subsequences differ (-a +b)\n%s", diff)
	}
	if want := len(a) + len(b) - 2*lcsLen(a, b); len(es) != want {
		t.Fatalf("script length %d, edit distance %d", len(es), want)
	}
}

func lcsLen[T comparable](a, b []T) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func randRunes(r *rand.Rand, n int, alphabet string) []rune {
	as := []rune(alphabet)
	res := make([]rune, n)
	for i := range res {
		res[i] = as[r.Intn(len(as))]
	}
	return res
}

func TestDiffRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := randRunes(r, r.Intn(30), "abc")
		b := randRunes(r, r.Intn(30), "abcd")
		es := Diff(a, b)
		checkScript(t, a, b, es)
	}
}

func TestDiffNearlyEqual(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		a := randRunes(r, 200, "abcdefgh")
		b := append([]rune(nil), a...)
		for k := 0; k < 3; k++ {
			b[r.Intn(len(b))] = 'z'
		}
		checkScript(t, a, b, Diff(a, b))
	}
}

// go-diff computes a minimal diff when it has no deadline.
func TestDiffAgainstDiffMatchPatch(t *testing.T) {
	dmp := diffpatch.New()
	dmp.DiffTimeout = 0
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a := randRunes(r, r.Intn(40), "xyz01")
		b := randRunes(r, r.Intn(40), "xyz02")
		oracle := 0
		for _, d := range dmp.DiffMainRunes(a, b, false) {
			if d.Type != diffpatch.DiffEqual {
				oracle += len([]rune(d.Text))
			}
		}
		if got := len(Diff(a, b)); got != oracle {
			t.Fatalf("%q -> %q: got %d edits, go-diff %d", string(a), string(b), got, oracle)
		}
	}
}

func mirror(es []Entry) map[Entry]bool {
	res := make(map[Entry]bool, len(es))
	for _, e := range es {
		m := Entry{Index: e.Index, Side: Right, Op: e.Op}
		if e.Side == Right {
			m.Side = Left
		}
		switch e.Op {
		case Insert:
			m.Op = Delete
		case Delete:
			m.Op = Insert
		}
		res[m] = true
	}
	return res
}

func entrySet(es []Entry) map[Entry]bool {
	res := make(map[Entry]bool, len(es))
	for _, e := range es {
		res[e] = true
	}
	return res
}

func TestDiffStable(t *testing.T) {
	tests := []struct{ a, b string }{
		{"ab", "ba"},
		{"abc", "cab"},
		{"xaybx", "ayxbxy"},
	}
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 300; i++ {
		tests = append(tests, struct{ a, b string }{
			string(randRunes(r, r.Intn(12), "abc")),
			string(randRunes(r, r.Intn(12), "abc")),
		})
	}
	for _, tc := range tests {
		a, b := []rune(tc.a), []rune(tc.b)
		fwd := DiffStable(a, b)
		back := DiffStable(b, a)
		checkScript(t, a, b, fwd)
		checkScript(t, b, a, back)
		if diff := cmp.Diff(entrySet(back), mirror(fwd)); diff != "" {
			t.Errorf("%q %q (-back +mirrored)\n%s", tc.a, tc.b, diff)
		}
	}
}
