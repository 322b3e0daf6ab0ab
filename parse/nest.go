package parse

import (
	"strings"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/tree"
)

// nest parses string leaves whose content is a JSON object or array.
// Content that does not parse cleanly is left alone.
func nest(t *tree.Tree, o *parseOpts) {
	for _, n := range t.InOrder() {
		if n.Type != tree.StringType {
			continue
		}
		s, _ := n.Value.(string)
		trimmed := strings.TrimSpace(s)
		if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
			continue
		}
		sub := parse(s, o)
		if !sub.Valid() {
			if debug.Nest() {
				debug.Logf("nest %s: %d errors, skipped\n", n.ID, len(sub.Errors))
			}
			continue
		}
		if t.NestNodeMap == nil {
			t.NestNodeMap = map[string]*tree.Tree{}
		}
		t.NestNodeMap[n.ID] = sub
	}
}
