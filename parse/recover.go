package parse

import (
	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/token"
	"github.com/signadot/jsondoc/tree"
)

// parseError makes an error node starting at the current token. A stop
// token is covered but left for the enclosing production; the node is
// empty when the token closes an outer container. Otherwise tokens are
// consumed, with bracket nesting, up to the next stop token.
func (p *parser) parseError(id, parentID string, err error) *tree.Node {
	start := p.peek()
	if start == nil {
		return p.errorNode(id, parentID, len(p.d), 0, err)
	}
	if p.isStop(start) {
		length := len(start.Bytes)
		if start.Type.IsClose() && start.Type != p.closers[len(p.closers)-1] {
			length = 0
		}
		return p.errorNode(id, parentID, start.Offset, length, err)
	}
	begin := p.i
	var depth int
	for tok := p.peek(); tok != nil; tok = p.peek() {
		if p.i > begin && depth == 0 && p.isStop(tok) {
			break
		}
		switch tok.Type {
		case token.TLCurl, token.TLSquare:
			depth++
		case token.TRCurl, token.TRSquare:
			if depth > 0 {
				depth--
			}
		}
		p.i++
	}
	end := p.toks[p.i-1].End()
	return p.errorNode(id, parentID, start.Offset, end-start.Offset, err)
}

func (p *parser) errorNode(id, parentID string, off, length int, err error) *tree.Node {
	win := tree.ErrorWindow{
		Offset:  off,
		Length:  length,
		Context: p.pd.Context(off, length, p.opts.previewWidth),
		Message: err.Error(),
	}
	n := &tree.Node{
		ID:       id,
		Type:     tree.ErrorType,
		ParentID: parentID,
		Offset:   off,
		Length:   length,
		RawText:  string(p.d[off : off+length]),
		Errors:   []tree.ErrorWindow{win},
	}
	p.t.Add(n)
	p.t.Errors = append(p.t.Errors, win)
	if debug.Recover() {
		line, col := p.pd.LineCol(off)
		debug.Logf("recover %s at %d:%d: %s %q\n", id, line+1, col+1, win.Message, win.Context)
	}
	return n
}
