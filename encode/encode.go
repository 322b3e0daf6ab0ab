package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/signadot/jsondoc/pointer"
	"github.com/signadot/jsondoc/token"
	"github.com/signadot/jsondoc/tree"
)

var ErrNoNode = errors.New("no such node")

type EncState struct {
	pretty   bool
	sort     bool
	tabWidth int
	maxWidth int

	// inline containers use ", " and ": "
	spaced bool

	depth int
	col   int

	Color func(tree.Type, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{tabWidth: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes the whole tree to w. Pretty output ends with a newline.
func Encode(t *tree.Tree, w io.Writer, opts ...EncodeOption) error {
	return EncodeNode(t, t.Root, w, opts...)
}

// EncodeNode writes the subtree at id to w.
func EncodeNode(t *tree.Tree, id string, w io.Writer, opts ...EncodeOption) error {
	n, ok := t.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoNode, id)
	}
	es := newState(opts)
	e := &encoder{t: t, es: es, buf: bytes.NewBuffer(nil), seen: map[string]bool{}}
	e.node(n)
	if es.pretty {
		e.buf.WriteByte('\n')
	}
	_, err := w.Write(e.buf.Bytes())
	return err
}

// Compact returns the canonical compact form of the subtree at id, or
// the empty string if there is no such node.
func Compact(t *tree.Tree, id string) string {
	n, ok := t.Get(id)
	if !ok {
		return ""
	}
	e := &encoder{t: t, es: &EncState{}, buf: bytes.NewBuffer(nil), seen: map[string]bool{}}
	e.node(n)
	return e.buf.String()
}

type encoder struct {
	t    *tree.Tree
	es   *EncState
	buf  *bytes.Buffer
	// ids on the current path, guarding against cyclic snapshots
	seen map[string]bool
}

func (e *encoder) write(typ tree.Type, a ColorAttr, s string) {
	if s == "" {
		return
	}
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		e.es.col = utf8.RuneCountInString(s[i+1:])
	} else {
		e.es.col += utf8.RuneCountInString(s)
	}
	if e.es.Color != nil {
		s = e.es.Color(typ, a, s)
	}
	e.buf.WriteString(s)
}

func (e *encoder) newline() {
	e.buf.WriteByte('\n')
	ind := "\t"
	if e.es.tabWidth > 0 {
		ind = strings.Repeat(" ", e.es.tabWidth)
	}
	s := strings.Repeat(ind, e.es.depth)
	e.buf.WriteString(s)
	e.es.col = len(s)
}

type member struct {
	key   string
	n     *tree.Node
	error bool
}

func (e *encoder) members(n *tree.Node) []member {
	res := make([]member, 0, len(n.Children))
	for i, id := range n.Children {
		c, ok := e.t.Nodes[id]
		if !ok || e.seen[id] {
			continue
		}
		m := member{n: c}
		if i < len(n.ChildrenKeys) {
			m.key = n.ChildrenKeys[i]
		}
		if seg, _ := pointer.LastSegment(id); c.Type == tree.ErrorType && pointer.IsErrorSegment(seg) {
			if c.Length == 0 {
				continue
			}
			m.error = true
		}
		res = append(res, m)
	}
	if e.es.sort && n.Type == tree.ObjectType {
		slices.SortStableFunc(res, func(a, b member) int {
			return strings.Compare(a.key, b.key)
		})
	}
	return res
}

func (e *encoder) node(n *tree.Node) {
	e.seen[n.ID] = true
	defer delete(e.seen, n.ID)
	switch n.Type {
	case tree.ObjectType, tree.ArrayType:
		e.container(n)
		return
	case tree.ErrorType:
		// the separator or closer an error stopped at is written by
		// the enclosing container
		switch n.RawText {
		case ",", "}", "]":
			return
		}
	}
	e.write(n.Type, ValueColor, n.RawText)
	// trailing garbage recorded under a scalar root
	for _, m := range e.members(n) {
		e.write(tree.ErrorType, ValueColor, " ")
		e.node(m.n)
	}
}

func (e *encoder) container(n *tree.Node) {
	open, close := "[", "]"
	if n.Type == tree.ObjectType {
		open, close = "{", "}"
	}
	ms := e.members(n)
	if len(ms) == 0 {
		e.write(n.Type, SepColor, open+close)
		return
	}
	if e.es.pretty && e.es.maxWidth > 0 {
		if inline := e.inline(n); e.es.col+utf8.RuneCountInString(inline) <= e.es.maxWidth {
			e.es.pretty, e.es.spaced = false, true
			defer func() { e.es.pretty, e.es.spaced = true, false }()
		}
	}
	sep := ","
	if e.es.spaced {
		sep = ", "
	}
	e.write(n.Type, SepColor, open)
	if e.es.pretty {
		e.es.depth++
	}
	for i, m := range ms {
		if i > 0 {
			e.write(n.Type, SepColor, sep)
		}
		if e.es.pretty {
			e.newline()
		}
		e.member(n, m)
	}
	if e.es.pretty {
		e.es.depth--
		e.newline()
	}
	e.write(n.Type, SepColor, close)
}

func (e *encoder) member(n *tree.Node, m member) {
	if n.Type == tree.ObjectType && !m.error {
		e.write(n.Type, FieldColor, token.Quote(m.key))
		sep := ":"
		if e.es.pretty || e.es.spaced {
			sep = ": "
		}
		e.write(n.Type, SepColor, sep)
	}
	e.node(m.n)
}

// inline renders n on one line without colors.
func (e *encoder) inline(n *tree.Node) string {
	sub := &encoder{
		t:    e.t,
		es:   &EncState{spaced: true, sort: e.es.sort},
		buf:  bytes.NewBuffer(nil),
		seen: map[string]bool{},
	}
	for id := range e.seen {
		sub.seen[id] = true
	}
	sub.node(n)
	return sub.buf.String()
}
