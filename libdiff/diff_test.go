package libdiff

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	gocmp "github.com/google/go-cmp/cmp"

	"github.com/signadot/jsondoc/parse"
	"github.com/signadot/jsondoc/tree"
)

type diffTest struct {
	name string
	a, b string
	opts []DiffOption
	want []Diff
}

var diffTests = []diffTest{
	{
		name: "scalar replace",
		a:    `{"a":1}`,
		b:    `{"a":2}`,
		want: []Diff{{ID: "$/a", Type: Replace}},
	},
	{
		name: "array append",
		a:    `[1,2]`,
		b:    `[1,2,3]`,
		want: []Diff{{ID: "$/2", Type: Insert, Side: Right}},
	},
	{
		name: "members",
		a:    `{"a":{"x":[1]},"b":1}`,
		b:    `{"b":1,"c":null}`,
		want: []Diff{
			{ID: "$/a", Type: Delete, Side: Left},
			{ID: "$/a/x", Type: Delete, Side: Left},
			{ID: "$/a/x/0", Type: Delete, Side: Left},
			{ID: "$/c", Type: Insert, Side: Right},
		},
	},
	{
		name: "type change",
		a:    `{"a":[1]}`,
		b:    `{"a":{"0":1}}`,
		want: []Diff{{ID: "$/a", Type: Replace}},
	},
	{
		name: "moved element",
		a:    `[9, 1, {"x":"u"}]`,
		b:    `[1, {"x":"v"}]`,
		want: []Diff{
			{ID: "$/0", Type: Delete, Side: Left},
			{ID: "$/2/x", Type: Replace, Side: Left},
			{ID: "$/1/x", Type: Replace, Side: Right},
		},
	},
	{
		name: "raw numbers",
		a:    `[12345678987654321, 1.0]`,
		b:    `[12345678987654322, 1]`,
		want: []Diff{
			{ID: "$/0", Type: Replace},
			{ID: "$/1", Type: Replace},
		},
	},
	{
		name: "duplicate occurrences",
		a:    `{"k":1,"k":2}`,
		b:    `{"k":3,"k":2}`,
		want: []Diff{{ID: "$/k$0", Type: Replace}},
	},
	{
		name: "unchanged",
		a:    `{"a":1,"b":[true]}`,
		b:    `{"a":2,"b":[true]}`,
		opts: []DiffOption{WithUnchanged(true)},
		want: []Diff{
			{ID: "$", Type: None},
			{ID: "$/a", Type: Replace},
			{ID: "$/b", Type: None},
			{ID: "$/b/0", Type: None},
		},
	},
	{
		name: "array budget",
		a:    `[1,2,3]`,
		b:    `[1,2,4]`,
		opts: []DiffOption{DiffBudget(4)},
		want: []Diff{{ID: "$", Type: Replace}},
	},
	{
		name: "within budget",
		a:    `[1,2,3]`,
		b:    `[1,2,4]`,
		opts: []DiffOption{DiffBudget(6)},
		want: []Diff{{ID: "$/2", Type: Replace}},
	},
	{
		name: "trailing content",
		a:    `1 2`,
		b:    `1 3`,
		want: []Diff{{ID: "$/$2", Type: Replace}},
	},
	{
		name: "recovered errors",
		a:    `{"a": @, "b": 1}`,
		b:    `{"a": 2, "b": 1}`,
		want: []Diff{{ID: "$/a", Type: Replace}},
	},
}

func TestDiffTrees(t *testing.T) {
	for _, tc := range diffTests {
		t.Run(tc.name, func(t *testing.T) {
			res := DiffTrees(parse.Parse(tc.a), parse.Parse(tc.b), tc.opts...)
			if diff := gocmp.Diff(tc.want, res.Diffs); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}
		})
	}
}

var sameDocs = []string{
	``,
	`null`,
	`{"a": [1, {"b": [[]]}], "c": "x", "c": "y"}`,
	`[1, @@, {"k": }]`,
	`{"s": "{\"n\": 1}"}`,
	`3 4`,
}

func TestDiffReflexive(t *testing.T) {
	for _, in := range sameDocs {
		t.Run(in, func(t *testing.T) {
			tr := parse.Parse(in)
			if res := DiffTrees(tr, tr); len(res.Diffs) != 0 {
				t.Errorf("got %v", res.Diffs)
			}
			other := parse.Parse(in)
			res := DiffTrees(tr, other, WithUnchanged(true))
			if len(res.Diffs) != tr.Len() {
				t.Errorf("got %d entries for %d nodes", len(res.Diffs), tr.Len())
			}
			if res.Changed() {
				t.Errorf("got %v", res.Diffs)
			}
		})
	}
}

func sortDiffs(ds []Diff) []Diff {
	res := slices.Clone(ds)
	slices.SortFunc(res, func(a, b Diff) int {
		if c := cmp.Compare(a.ID, b.ID); c != 0 {
			return c
		}
		return cmp.Compare(a.Side, b.Side)
	})
	return res
}

func TestDiffAntiSymmetric(t *testing.T) {
	for _, tc := range diffTests {
		if tc.opts != nil {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			a, b := parse.Parse(tc.a), parse.Parse(tc.b)
			fwd := Reverse(DiffTrees(a, b, WithTextCompare(true)))
			back := DiffTrees(b, a, WithTextCompare(true))
			if diff := gocmp.Diff(sortDiffs(back.Diffs), sortDiffs(fwd.Diffs)); diff != "" {
				t.Errorf("(-back +reversed)\n%s", diff)
			}
			if diff := gocmp.Diff(back.TextDiffs, fwd.TextDiffs); diff != "" {
				t.Errorf("text (-back +reversed)\n%s", diff)
			}
		})
	}
}

var arrayElems = []string{`0`, `1`, `2`, `"ab"`, `"ba"`, `[1]`, `[2, 1]`, `{"k":2}`, `{"k":"ab"}`}

func randArray(r *rand.Rand) string {
	n := r.Intn(7)
	es := make([]string, n)
	for i := range es {
		es[i] = arrayElems[r.Intn(len(arrayElems))]
	}
	return "[" + strings.Join(es, ", ") + "]"
}

func sortRanges(m map[string][]TextRange) map[string][]TextRange {
	res := make(map[string][]TextRange, len(m))
	for id, rs := range m {
		rs = slices.Clone(rs)
		slices.SortFunc(rs, func(a, b TextRange) int {
			if c := cmp.Compare(a.Side, b.Side); c != 0 {
				return c
			}
			return cmp.Compare(a.Start, b.Start)
		})
		res[id] = rs
	}
	return res
}

func TestDiffAntiSymmetricArrays(t *testing.T) {
	pairs := [][2]string{
		{`[{"k":2},2,1,{"k":2},0]`, `[[1],{"k":2},0,[1]]`},
		{`[1, 2]`, `[2, 1]`},
		{`["ab"]`, `["ba"]`},
	}
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 1000; i++ {
		pairs = append(pairs, [2]string{randArray(r), randArray(r)})
	}
	for _, p := range pairs {
		a, b := parse.Parse(p[0]), parse.Parse(p[1])
		fwd := Reverse(DiffTrees(a, b, WithTextCompare(true)))
		back := DiffTrees(b, a, WithTextCompare(true))
		if diff := gocmp.Diff(sortDiffs(back.Diffs), sortDiffs(fwd.Diffs)); diff != "" {
			t.Fatalf("%s %s (-back +reversed)\n%s", p[0], p[1], diff)
		}
		if diff := gocmp.Diff(sortRanges(back.TextDiffs), sortRanges(fwd.TextDiffs)); diff != "" {
			t.Fatalf("%s %s text (-back +reversed)\n%s", p[0], p[1], diff)
		}
	}
}

func TestTextCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		opts []DiffOption
		want map[string][]TextRange
	}{
		{
			name: "moved",
			a:    `[9, 1, {"x":"u"}]`,
			b:    `[1, {"x":"v"}]`,
			want: map[string][]TextRange{
				"$/2/x": {{Start: 13, End: 14, Type: Delete, Side: Left}},
				"$/1/x": {{Start: 10, End: 11, Type: Insert, Side: Right}},
			},
		},
		{
			name: "multibyte",
			a:    `{"s":"héllo"}`,
			b:    `{"s":"hello"}`,
			want: map[string][]TextRange{
				"$/s": {
					{Start: 7, End: 9, Type: Delete, Side: Left},
					{Start: 7, End: 8, Type: Insert, Side: Right},
				},
			},
		},
		{
			name: "number",
			a:    `{"n":1.5}`,
			b:    `{"n":1.25}`,
			want: map[string][]TextRange{
				"$/n": {{Start: 7, End: 8, Type: Insert, Side: Right}},
			},
		},
		{
			name: "over budget",
			a:    `{"s":"abc"}`,
			b:    `{"s":"abd"}`,
			opts: []DiffOption{DiffBudget(8)},
		},
		{
			name: "booleans",
			a:    `[true]`,
			b:    `[false]`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := append([]DiffOption{WithTextCompare(true)}, tc.opts...)
			res := DiffTrees(parse.Parse(tc.a), parse.Parse(tc.b), opts...)
			if diff := gocmp.Diff(tc.want, res.TextDiffs); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}
			if !res.Changed() {
				t.Error("no change reported")
			}
		})
	}
}

func TestDiffMalformed(t *testing.T) {
	dangling := parse.Parse(`{"x": {"a": 1}, "y": 1}`)
	delete(dangling.Nodes, "$/x/a")
	res := DiffTrees(dangling, parse.Parse(`{"x": {"a": 2}, "y": 2}`))
	want := []Diff{{ID: "$/x", Type: Replace}, {ID: "$/y", Type: Replace}}
	if diff := gocmp.Diff(want, res.Diffs); diff != "" {
		t.Errorf("dangling (-want +got)\n%s", diff)
	}
	if err := Validate(dangling); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("Validate = %v", err)
	}

	cyclic := parse.Parse(`{"x": {"a": 1}, "y": 1}`)
	x := cyclic.Nodes["$/x"]
	x.Children = append(x.Children, "$")
	x.ChildrenKeys = append(x.ChildrenKeys, "loop")
	res = DiffTrees(cyclic, parse.Parse(`{"x": {"a": 1}, "y": 1}`))
	if diff := gocmp.Diff([]Diff{{ID: "$/x", Type: Replace}}, res.Diffs); diff != "" {
		t.Errorf("cyclic (-want +got)\n%s", diff)
	}
	if err := Validate(cyclic); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("Validate = %v", err)
	}
	_ = DiffTrees(cyclic, cyclic, WithUnchanged(true))

	res = DiffTrees(tree.New("", 1), parse.Parse(`[1]`))
	want = []Diff{{ID: "$", Type: Insert, Side: Right}, {ID: "$/0", Type: Insert, Side: Right}}
	if diff := gocmp.Diff(want, res.Diffs); diff != "" {
		t.Errorf("no root (-want +got)\n%s", diff)
	}
	if res := DiffTrees(nil, nil); len(res.Diffs) != 0 {
		t.Errorf("got %v", res.Diffs)
	}
	if err := Validate(parse.Parse(`{"a": [1, {"b": 2}]}`)); err != nil {
		t.Error(err)
	}
}

func TestStats(t *testing.T) {
	res := DiffTrees(parse.Parse(`{"a":{"x":[1]},"b":1,"m":[0,"u"]}`), parse.Parse(`{"b":1,"c":null,"m":["v"]}`))
	want := Stats{Inserted: 1, Deleted: 4, Replaced: 1}
	if diff := gocmp.Diff(want, res.Stats()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if got := want.String(); got != "1 inserted, 4 deleted, 1 replaced" {
		t.Errorf("got %q", got)
	}
}

func TestFormatPretty(t *testing.T) {
	tests := []struct {
		a, b  string
		width int
		out   string
	}{
		{
			a:   `{"a":{"x":[1]},"b":1,"r":"u"}`,
			b:   `{"b":1,"c":null,"r":"v"}`,
			out: "- $/a: {\"x\":[1]}\n~ $/r: \"u\" => \"v\"\n+ $/c: null\n",
		},
		{
			a:   `[9, 1, {"x":"u"}]`,
			b:   `[1, {"x":"v"}]`,
			out: "- $/0: 9\n~ $/2/x => $/1/x: \"u\" => \"v\"\n",
		},
		{
			a:     `["aaaaaaaaaa"]`,
			b:     `["bbbbbbbbbb"]`,
			width: 5,
			out:   "~ $/0: \"aaaa… => \"bbbb…\n",
		},
	}
	for _, tc := range tests {
		l, r := parse.Parse(tc.a), parse.Parse(tc.b)
		buf := bytes.NewBuffer(nil)
		if err := FormatPretty(buf, DiffTrees(l, r), l, r, FormatColors(false), FormatWidth(tc.width)); err != nil {
			t.Fatal(err)
		}
		if diff := gocmp.Diff(tc.out, buf.String()); diff != "" {
			t.Errorf("(-want +got)\n%s", diff)
		}
	}
}

func TestJSONPatch(t *testing.T) {
	tests := []struct{ a, b string }{
		{
			a: `{"a":1,"b":[1,2,3],"c":{"d":"x"}}`,
			b: `{"a":2,"b":[0,1,3,4],"c":{},"e":true}`,
		},
		{
			a: `[9, 1, {"x":"u"}, [1,2]]`,
			b: `[1, {"x":"v"}, 7, [2]]`,
		},
		{
			a: `[[1, 2, 3], [4], 5, 6]`,
			b: `[[3], 0, [4, 4], 6, [7]]`,
		},
		{
			a: `{"k/~": [1], "big": 12345678987654321}`,
			b: `{"k/~": [1, 2], "big": 12345678987654322}`,
		},
		{
			a: `{"a": [{"b": [1, 2]}, {"c": 1}]}`,
			b: `{"a": [{"c": 1}, {"b": [2, 1]}]}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.a, func(t *testing.T) {
			l, r := parse.Parse(tc.a), parse.Parse(tc.b)
			ops, err := JSONPatch(DiffTrees(l, r), l, r)
			if err != nil {
				t.Fatal(err)
			}
			d, err := json.Marshal(ops)
			if err != nil {
				t.Fatal(err)
			}
			p, err := jsonpatch.DecodePatch(d)
			if err != nil {
				t.Fatal(err)
			}
			out, err := p.Apply([]byte(tc.a))
			if err != nil {
				t.Fatalf("%s: %v", d, err)
			}
			if !jsonpatch.Equal(out, []byte(tc.b)) {
				t.Errorf("patch %s gave %s", d, out)
			}
		})
	}
}

func TestJSONPatchErrors(t *testing.T) {
	l, r := parse.Parse(`{"a":1,"a":2}`), parse.Parse(`{"a":5,"a":2}`)
	if _, err := JSONPatch(DiffTrees(l, r), l, r); !errors.Is(err, ErrPatch) {
		t.Errorf("duplicates: %v", err)
	}
	l, r = parse.Parse(`[1,`), parse.Parse(`[1]`)
	if _, err := JSONPatch(DiffTrees(l, r), l, r); !errors.Is(err, ErrPatch) {
		t.Errorf("syntax errors: %v", err)
	}
}

func TestTextDiff(t *testing.T) {
	lines := TextDiff("a\nb\nc\n", "a\nB\nc\n")
	want := []Line{
		{Type: None, Text: "a"},
		{Type: Delete, Text: "b"},
		{Type: Insert, Text: "B"},
		{Type: None, Text: "c"},
	}
	if diff := gocmp.Diff(want, lines); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if got := FormatLines(lines); got != "  a\n- b\n+ B\n  c\n" {
		t.Errorf("got %q", got)
	}
}

func TestDiffTypeText(t *testing.T) {
	d, err := json.Marshal(Diff{ID: "$/a", Type: Replace, Side: Left})
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"id":"$/a","diffType":"replace","side":"left"}` {
		t.Errorf("got %s", d)
	}
}
