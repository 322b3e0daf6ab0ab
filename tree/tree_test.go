package tree_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/signadot/jsondoc/parse"
	"github.com/signadot/jsondoc/tree"
)

const sample = `{ "array": [12345678987654321, 0.1234567891111111111], "o": {"k": "v", "k": null}, "b": true }`

func TestFindNodeAtOffset(t *testing.T) {
	tr := parse.Parse(sample)
	tests := []struct {
		off int
		id  string
	}{
		{off: 0, id: "$"},
		{off: 2, id: "$/array"},
		{off: 11, id: "$/array"},
		{off: 12, id: "$/array/0"},
		{off: 20, id: "$/array/0"},
		{off: 29, id: "$/array"},
		{off: 31, id: "$/array/1"},
		{off: 63, id: "$/o/k$0"},
		{off: 76, id: "$/o/k"},
	}
	for _, tc := range tests {
		n, ok := tr.FindNodeAtOffset(tc.off)
		if !ok {
			t.Errorf("%d: no node", tc.off)
			continue
		}
		if n.ID != tc.id {
			t.Errorf("%d: got %s want %s", tc.off, n.ID, tc.id)
		}
	}
	if _, ok := tr.FindNodeAtOffset(len(sample)); ok {
		t.Error("offset past the end")
	}
	if _, ok := tr.FindNodeAtOffset(-1); ok {
		t.Error("negative offset")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, in := range []string{sample, `[1, @@, {"a": }]`, `"s"`, `""`, ``} {
		tr := parse.Parse(in, parse.ParseVersion(3))
		d, err := json.Marshal(tr)
		if err != nil {
			t.Fatal(err)
		}
		back := &tree.Tree{}
		if err := json.Unmarshal(d, back); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tr, back); diff != "" {
			t.Errorf("%q (-want +got)\n%s", in, diff)
		}
	}
	err := json.Unmarshal([]byte(`{"nodes": 1}`), &tree.Tree{})
	if !errors.Is(err, tree.ErrSnapshot) {
		t.Errorf("got %v", err)
	}
}

func TestSnapshotNested(t *testing.T) {
	tr := parse.Parse(`{"s": "[1]"}`, parse.ParseNest(true))
	back := tree.FromObject(tr.ToObject())
	sub, ok := back.Nested("$/s")
	if !ok {
		t.Fatal("nest lost")
	}
	if n, _ := sub.Get("$/0"); n == nil || n.RawText != "1" {
		t.Errorf("got %v", n)
	}
}

func TestFromObjectLenient(t *testing.T) {
	s := &tree.Snapshot{
		Root: "$",
		Nodes: map[string]*tree.NodeSnapshot{
			"$":   {ID: "$", Type: tree.ObjectType, ChildrenKeys: []string{"a", "b", "a", "$9"}},
			"$/a": {ID: "$/a", Type: tree.NumberType, ParentID: "$", RawText: "2"},
			// $/b is missing, $/a$0 too
			"$/$9": {ID: "$/$9", Type: tree.ErrorType, ParentID: "$"},
			"loop": {Type: tree.ArrayType, Children: []string{"loop"}},
			"nil":  nil,
		},
	}
	tr := tree.FromObject(s)
	root := tr.RootNode()
	want := []string{"$/a$0", "$/b", "$/a", "$/$9"}
	if diff := cmp.Diff(want, root.Children); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if diff := cmp.Diff([]string{"$/a", "$/$9"}, ids(tr.Children(root))); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if n, _ := tr.Get("loop"); n.ID != "loop" {
		t.Errorf("id not filled from key: %q", n.ID)
	}
	if _, ok := tr.Get("nil"); ok {
		t.Error("nil snapshot node kept")
	}
	// a self loop must not hang a walk
	tr.Root = "loop"
	if got := len(tr.InOrder()); got != 1 {
		t.Errorf("visited %d", got)
	}
}

func TestChildIDs(t *testing.T) {
	got := tree.ChildIDs("$/x", tree.ObjectType, []string{"a/b", "c", "a/b", "a/b"}, nil)
	want := []string{"$/x/a~1b$0", "$/x/c", "$/x/a~1b$1", "$/x/a~1b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	got = tree.ChildIDs("$", tree.ArrayType, []string{"0", "1"}, nil)
	if diff := cmp.Diff([]string{"$/0", "$/1"}, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	isErr := func(k string) bool { return k == "$7" }
	got = tree.ChildIDs("$", tree.ObjectType, []string{"$0", "$7", "$", "$0"}, isErr)
	want = []string{"$/%240$0", "$/$7", "$/%24", "$/%240"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

// Keys that look like error segments stay keys when rebuilding from
// childrenKeys alone.
func TestFromObjectDollarKeys(t *testing.T) {
	for _, in := range []string{
		`{"$0":"sé\n","/":null}`,
		`{"$": 1, "$12": [2], "a$0": 3}`,
		`{"$0": 1, @}`,
	} {
		t.Run(in, func(t *testing.T) {
			tr := parse.Parse(in)
			s := tr.ToObject()
			for _, ns := range s.Nodes {
				ns.Children = nil
			}
			got := tree.FromObject(s)
			if diff := cmp.Diff(tr.RootNode().Children, got.RootNode().Children); diff != "" {
				t.Errorf("(-want +got)\n%s", diff)
			}
			for id, n := range tr.Nodes {
				gn, ok := got.Get(id)
				if !ok {
					t.Errorf("missing %s", id)
					continue
				}
				if diff := cmp.Diff(n.Children, gn.Children, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("%s (-want +got)\n%s", id, diff)
				}
			}
		})
	}
}

func ids(ns []*tree.Node) []string {
	res := make([]string, len(ns))
	for i, n := range ns {
		res[i] = n.ID
	}
	return res
}

func TestWalk(t *testing.T) {
	tr := parse.Parse(`{"a": [1, 2], "b": {"c": 3}}`)
	var pre, post []string
	err := tr.Walk(func(n *tree.Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.ID)
			return true, nil
		}
		pre = append(pre, n.ID)
		return n.ID != "$/a", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"$", "$/a", "$/b", "$/b/c"}, pre); diff != "" {
		t.Errorf("pre (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff([]string{"$/a", "$/b/c", "$/b", "$"}, post); diff != "" {
		t.Errorf("post (-want +got)\n%s", diff)
	}
	stop := errors.New("stop")
	n := 0
	err = tr.Walk(func(*tree.Node, bool) (bool, error) {
		n++
		if n == 2 {
			return false, stop
		}
		return true, nil
	})
	if !errors.Is(err, stop) || n != 2 {
		t.Errorf("got %v after %d calls", err, n)
	}
}

func TestNumbers(t *testing.T) {
	tr := parse.Parse(sample)
	n, _ := tr.Get("$/array/0")
	i, err := n.Int64()
	if err != nil || i != 12345678987654321 {
		t.Errorf("Int64 = %d, %v", i, err)
	}
	f, err := n.BigFloat()
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Text('f', 0); got != "12345678987654321" {
		t.Errorf("BigFloat = %s", got)
	}
	small, _ := tr.Get("$/array/1")
	if v, err := small.Float64(); err != nil || v != 0.1234567891111111111 {
		t.Errorf("Float64 = %v, %v", v, err)
	}
	if _, err := small.Int64(); err == nil {
		t.Error("Int64 of a fraction")
	}
	b, _ := tr.Get("$/b")
	if _, err := b.Number(); !errors.Is(err, tree.ErrNotNumber) {
		t.Errorf("got %v", err)
	}
}

func TestClone(t *testing.T) {
	tr := parse.Parse(sample)
	c := tr.Clone(9)
	if c.Version != 9 {
		t.Errorf("version %d", c.Version)
	}
	c.RootNode().Children[0] = "changed"
	if tr.RootNode().Children[0] != "$/array" {
		t.Error("clone shares children")
	}
}

func TestTypes(t *testing.T) {
	var names []string
	for _, typ := range tree.Types() {
		names = append(names, typ.String())
	}
	want := []string{"object", "array", "string", "number", "boolean", "null", "error"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	var typ tree.Type
	if err := typ.UnmarshalText([]byte("boolean")); err != nil || typ != tree.BoolType {
		t.Errorf("got %v %v", typ, err)
	}
	if err := typ.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected error")
	}
}
