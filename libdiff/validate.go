package libdiff

import (
	"fmt"

	"github.com/signadot/jsondoc/tree"
)

// Validate checks the node graph of t, typically rebuilt from a
// snapshot. DiffTrees accepts invalid trees; Validate tells callers
// whether replace entries may stand for unmatched structure.
func Validate(t *tree.Tree) error {
	root, ok := t.Get(t.Root)
	if !ok {
		return fmt.Errorf("%w: missing root %q", ErrInvalidTree, t.Root)
	}
	seen := map[string]bool{root.ID: true}
	stack := []*tree.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(n.ChildrenKeys) != len(n.Children) {
			return fmt.Errorf("%w: %s has %d keys and %d children", ErrInvalidTree, n.ID, len(n.ChildrenKeys), len(n.Children))
		}
		for _, id := range n.Children {
			c, ok := t.Nodes[id]
			switch {
			case !ok:
				return fmt.Errorf("%w: %s references missing %s", ErrInvalidTree, n.ID, id)
			case seen[id]:
				return fmt.Errorf("%w: %s reached twice", ErrInvalidTree, id)
			case c.ParentID != n.ID:
				return fmt.Errorf("%w: %s has parent %q, listed under %s", ErrInvalidTree, id, c.ParentID, n.ID)
			}
			seen[id] = true
			stack = append(stack, c)
		}
	}
	return nil
}
