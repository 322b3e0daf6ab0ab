package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/tree"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

// Env is the environment of an expression evaluated on one node.
//
// Value holds numbers as float64, so integers beyond 2^53 and long
// fractions are rounded. Compare raw for exact matches.
type Env struct {
	ID       string   `expr:"id"`
	Path     []string `expr:"path"`
	Kind     string   `expr:"kind"`
	Key      string   `expr:"key"`
	Depth    int      `expr:"depth"`
	Raw      string   `expr:"raw"`
	Value    any      `expr:"value"`
	Offset   int      `expr:"offset"`
	Length   int      `expr:"length"`
	Children int      `expr:"children"`
	Message  string   `expr:"message"`

	// At returns the compact text of the node with the given id in the
	// same tree, or "" when there is none.
	At func(id string) string `expr:"at"`
}

// NewEnv describes n, a node of t.
func NewEnv(t *tree.Tree, n *tree.Node) Env {
	key, _ := n.Key()
	env := Env{
		ID:       n.ID,
		Path:     n.Path(),
		Kind:     n.Type.String(),
		Key:      key,
		Depth:    len(n.Path()),
		Raw:      n.RawText,
		Value:    value(n),
		Offset:   n.Offset,
		Length:   n.Length,
		Children: len(n.Children),
		At: func(id string) string {
			return encode.Compact(t, id)
		},
	}
	if len(n.Errors) != 0 {
		msgs := make([]string, len(n.Errors))
		for i := range n.Errors {
			msgs[i] = n.Errors[i].Message
		}
		env.Message = strings.Join(msgs, "; ")
	}
	return env
}

func value(n *tree.Node) any {
	switch n.Type {
	case tree.NumberType:
		f, err := n.Float64()
		if err != nil {
			return nil
		}
		return f
	case tree.StringType, tree.BoolType:
		return n.Value
	}
	return nil
}

type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles src, which must evaluate to a boolean.
func Compile(src string) (*Query, error) {
	opts := append(exprOpts(), expr.Env(Env{}), expr.AsBool())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Query {
	q, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates q on n, a node of t.
func (q *Query) Match(t *tree.Tree, n *tree.Node) (bool, error) {
	res, err := expr.Run(q.prg, NewEnv(t, n))
	if err != nil {
		return false, fmt.Errorf("%w: %s at %s: %w", ErrQuery, q.src, n.ID, err)
	}
	ok, _ := res.(bool)
	return ok, nil
}

// Select returns the reachable nodes of t matching q in document order.
func (q *Query) Select(t *tree.Tree) ([]*tree.Node, error) {
	var res []*tree.Node
	for _, n := range t.InOrder() {
		ok, err := q.Match(t, n)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, n)
		}
	}
	if debug.Query() {
		debug.Logf("query %q selected %d of %d nodes\n", q.src, len(res), t.Len())
	}
	return res, nil
}

// IDs returns the ids of nodes.
func IDs(nodes []*tree.Node) []string {
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = n.ID
	}
	return res
}
