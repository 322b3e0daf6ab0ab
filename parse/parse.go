package parse

import (
	"slices"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/pointer"
	"github.com/signadot/jsondoc/token"
	"github.com/signadot/jsondoc/tree"
)

// Parse parses text into a tree. Syntax errors are recorded as error
// nodes; see the package documentation.
func Parse(text string, opts ...ParseOption) *tree.Tree {
	o := defaultOpts()
	for _, f := range opts {
		f(o)
	}
	return parse(text, o)
}

func parse(text string, o *parseOpts) *tree.Tree {
	d := []byte(text)
	p := &parser{
		d:    d,
		toks: token.Tokenize(d),
		pd:   token.NewPosDoc(d),
		t:    tree.New(text, o.version),
		opts: o,
	}
	p.parseDocument()
	slices.SortStableFunc(p.t.Errors, func(a, b tree.ErrorWindow) int {
		return a.Offset - b.Offset
	})
	if debug.Parse() {
		debug.Logf("parse v%d: %d bytes %d tokens %d nodes %d errors\n",
			o.version, len(d), len(p.toks), p.t.Len(), len(p.t.Errors))
	}
	if o.nest {
		nest(p.t, o)
	}
	return p.t
}

type parser struct {
	d    []byte
	toks []token.Token
	i    int
	pd   *token.PosDoc
	t    *tree.Tree
	opts *parseOpts

	// closers of the open containers, innermost last
	closers []token.TokenType
}

func (p *parser) peek() *token.Token {
	if p.i < len(p.toks) {
		return &p.toks[p.i]
	}
	return nil
}

func (p *parser) next() *token.Token {
	tok := p.peek()
	if tok != nil {
		p.i++
	}
	return tok
}

func (p *parser) parseDocument() {
	if len(p.toks) == 0 {
		p.errorNode(pointer.Root, "", 0, len(p.d), ErrEmptyDoc)
		return
	}
	root := p.parseValue(pointer.Root, "")
	if p.i == len(p.toks) {
		return
	}
	first := p.toks[p.i]
	last := p.toks[len(p.toks)-1]
	p.i = len(p.toks)
	seg := pointer.ErrorSegment(first.Offset)
	e := p.errorNode(pointer.JoinSegment(root.ID, seg), root.ID, first.Offset, last.End()-first.Offset, ErrTrailing)
	root.ChildrenKeys = append(root.ChildrenKeys, seg)
	root.Children = append(root.Children, e.ID)
}

func (p *parser) parseValue(id, parentID string) *tree.Node {
	tok := p.peek()
	if tok == nil {
		return p.errorNode(id, parentID, len(p.d), 0, ErrUnexpectedEOF)
	}
	switch tok.Type {
	case token.TLCurl:
		return p.parseObject(id, parentID)
	case token.TLSquare:
		return p.parseArray(id, parentID)
	case token.TString, token.TNumber, token.TTrue, token.TFalse, token.TNull:
		p.i++
		return p.leaf(id, parentID, tok)
	}
	return p.parseError(id, parentID, unexpectedErr(tok))
}

func (p *parser) leaf(id, parentID string, tok *token.Token) *tree.Node {
	n := &tree.Node{
		ID:       id,
		ParentID: parentID,
		Offset:   tok.Offset,
		Length:   len(tok.Bytes),
		RawText:  string(tok.Bytes),
	}
	switch tok.Type {
	case token.TString:
		n.Type = tree.StringType
		n.Value = tok.String()
	case token.TNumber:
		n.Type = tree.NumberType
	case token.TTrue:
		n.Type = tree.BoolType
		n.Value = true
	case token.TFalse:
		n.Type = tree.BoolType
		n.Value = false
	case token.TNull:
		n.Type = tree.NullType
	}
	p.t.Add(n)
	return n
}

func (p *parser) push(tt token.TokenType) {
	p.closers = append(p.closers, tt)
}

func (p *parser) pop() {
	p.closers = p.closers[:len(p.closers)-1]
}

// isStop reports whether tok lets an enclosing production resume.
func (p *parser) isStop(tok *token.Token) bool {
	if len(p.closers) == 0 {
		return false
	}
	if tok.Type == token.TComma {
		return true
	}
	return tok.Type.IsClose() && slices.Contains(p.closers, tok.Type)
}

// closesEnclosing reports whether tok closes a container other than the
// innermost one.
func (p *parser) closesEnclosing(tok *token.Token) bool {
	n := len(p.closers)
	return n > 1 && tok.Type.IsClose() && slices.Contains(p.closers[:n-1], tok.Type)
}
