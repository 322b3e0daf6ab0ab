package tree

import (
	"sort"

	"github.com/signadot/jsondoc/pointer"
)

type Tree struct {
	Root    string
	Nodes   map[string]*Node
	Version int64
	Text    string

	// Errors collects the windows of all error nodes in document order.
	Errors []ErrorWindow

	// NestNodeMap maps string leaves whose content is itself JSON to
	// the tree parsed from that content.
	NestNodeMap map[string]*Tree
}

func New(text string, version int64) *Tree {
	return &Tree{
		Root:    pointer.Root,
		Nodes:   map[string]*Node{},
		Version: version,
		Text:    text,
	}
}

// Add stores n, replacing any node with the same id.
func (t *Tree) Add(n *Node) {
	t.Nodes[n.ID] = n
}

func (t *Tree) Valid() bool {
	return len(t.Errors) == 0
}

func (t *Tree) Len() int {
	return len(t.Nodes)
}

func (t *Tree) Get(id string) (*Node, bool) {
	n, ok := t.Nodes[id]
	return n, ok
}

func (t *Tree) RootNode() *Node {
	return t.Nodes[t.Root]
}

// Lookup finds the node at path.
func (t *Tree) Lookup(path ...string) (*Node, bool) {
	return t.Get(pointer.ToPointer(path...))
}

func (t *Tree) Parent(n *Node) (*Node, bool) {
	if n.IsRoot() {
		return nil, false
	}
	return t.Get(n.ParentID)
}

// Children returns the children of n that are present in t.
func (t *Tree) Children(n *Node) []*Node {
	res := make([]*Node, 0, len(n.Children))
	for _, id := range n.Children {
		if c, ok := t.Nodes[id]; ok {
			res = append(res, c)
		}
	}
	return res
}

func (t *Tree) Nested(id string) (*Tree, bool) {
	st, ok := t.NestNodeMap[id]
	return st, ok
}

// Walk calls f on every node reachable from the root, before (isPost
// false) and after (isPost true) its children. Returning false before
// the children skips them. Nodes are visited at most once.
func (t *Tree) Walk(f func(n *Node, isPost bool) (bool, error)) error {
	root := t.RootNode()
	if root == nil {
		return nil
	}
	seen := make(map[string]bool, len(t.Nodes))
	return t.walk(root, seen, f)
}

func (t *Tree) walk(n *Node, seen map[string]bool, f func(*Node, bool) (bool, error)) error {
	seen[n.ID] = true
	ok, err := f(n, false)
	if err != nil {
		return err
	}
	if ok {
		for _, id := range n.Children {
			c, present := t.Nodes[id]
			if !present || seen[id] {
				continue
			}
			if err := t.walk(c, seen, f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

// InOrder returns the reachable nodes in document order.
func (t *Tree) InOrder() []*Node {
	res := make([]*Node, 0, len(t.Nodes))
	t.Walk(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			res = append(res, n)
		}
		return true, nil
	})
	return res
}

func (t *Tree) ErrorNodes() []*Node {
	var res []*Node
	for _, n := range t.InOrder() {
		if n.Type == ErrorType {
			res = append(res, n)
		}
	}
	return res
}

// FindNodeAtOffset returns the deepest node whose span, including its
// key, contains off.
func (t *Tree) FindNodeAtOffset(off int) (*Node, bool) {
	n := t.RootNode()
	if n == nil || off < n.Start() || off >= n.End() {
		return nil, false
	}
	for steps := 0; steps < len(t.Nodes); steps++ {
		kids := n.Children
		i := sort.Search(len(kids), func(i int) bool {
			c, ok := t.Nodes[kids[i]]
			return !ok || c.End() > off
		})
		if i == len(kids) {
			break
		}
		c, ok := t.Nodes[kids[i]]
		if !ok || off < c.Start() {
			break
		}
		n = c
	}
	return n, true
}
