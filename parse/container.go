package parse

import (
	"strconv"

	"github.com/signadot/jsondoc/pointer"
	"github.com/signadot/jsondoc/token"
	"github.com/signadot/jsondoc/tree"
)

type object struct {
	n *tree.Node
	// position in n.Children of the current holder of each key's plain id
	plain map[string]int
	// occurrences seen so far of each key
	occ map[string]int
}

func (p *parser) parseObject(id, parentID string) *tree.Node {
	open := p.next()
	n := &tree.Node{
		ID:       id,
		Type:     tree.ObjectType,
		ParentID: parentID,
		Offset:   open.Offset,
	}
	p.t.Add(n)
	p.push(token.TRCurl)
	defer p.pop()

	obj := &object{n: n, plain: map[string]int{}, occ: map[string]int{}}
	needSep := false
	for {
		tok := p.peek()
		switch {
		case tok == nil:
			p.unclosedObject(n, len(p.d))
			return n
		case tok.Type == token.TRCurl:
			p.i++
			n.Length = tok.End() - n.Offset
			return n
		case p.closesEnclosing(tok):
			p.unclosedObject(n, tok.Offset)
			return n
		}
		if needSep {
			if tok.Type != token.TComma {
				p.errorMember(n, expectedErr("',' or '}'", tok))
				continue
			}
			p.i++
			needSep = false
			if next := p.peek(); next != nil && next.Type == token.TRCurl && !p.covered(n, tok) {
				e := p.errorNode(p.errorID(n, tok.Offset), n.ID, tok.Offset, len(tok.Bytes), ErrTrailingComma)
				appendChild(n, pointer.ErrorSegment(tok.Offset), e)
			}
			continue
		}
		switch tok.Type {
		case token.TString:
		case token.TComma:
			p.i++
			e := p.errorNode(p.errorID(n, tok.Offset), n.ID, tok.Offset, len(tok.Bytes), unexpectedErr(tok))
			appendChild(n, pointer.ErrorSegment(tok.Offset), e)
			continue
		default:
			p.errorMember(n, expectedErr("string key", tok))
			needSep = true
			continue
		}
		p.i++
		p.member(obj, tok)
		needSep = true
	}
}

func (p *parser) member(obj *object, keyTok *token.Token) {
	n := obj.n
	key := keyTok.String()
	cid := pointer.Join(n.ID, key)
	if i, ok := obj.plain[key]; ok {
		prev := pointer.JoinSegment(n.ID, pointer.OccurrenceSegment(key, obj.occ[key]-1))
		p.rename(p.t.Nodes[n.Children[i]], prev)
		n.Children[i] = prev
	}
	obj.occ[key]++

	var c *tree.Node
	if colon := p.peek(); colon == nil || colon.Type != token.TColon {
		c = p.parseError(cid, n.ID, expectedErr("':'", colon))
	} else {
		p.i++
		c = p.parseValue(cid, n.ID)
	}
	c.KeyOffset, c.KeyLength = keyTok.Offset, len(keyTok.Bytes)
	obj.plain[key] = len(n.Children)
	appendChild(n, key, c)
}

// rename moves the subtree at c to newID.
func (p *parser) rename(c *tree.Node, newID string) {
	old := c.ID
	delete(p.t.Nodes, old)
	c.ID = newID
	p.t.Add(c)
	for i, cid := range c.Children {
		gc, ok := p.t.Nodes[cid]
		if !ok {
			continue
		}
		nid := newID + cid[len(old):]
		gc.ParentID = newID
		p.rename(gc, nid)
		c.Children[i] = nid
	}
}

func (p *parser) errorID(n *tree.Node, off int) string {
	return pointer.JoinSegment(n.ID, pointer.ErrorSegment(off))
}

func (p *parser) errorMember(n *tree.Node, err error) {
	off := p.peek().Offset
	e := p.parseError(p.errorID(n, off), n.ID, err)
	appendChild(n, pointer.ErrorSegment(off), e)
}

func (p *parser) unclosedObject(n *tree.Node, end int) {
	e := p.errorNode(p.errorID(n, end), n.ID, end, 0, unclosedErr("object"))
	appendChild(n, pointer.ErrorSegment(end), e)
	n.Length = end - n.Offset
}

func (p *parser) parseArray(id, parentID string) *tree.Node {
	open := p.next()
	n := &tree.Node{
		ID:       id,
		Type:     tree.ArrayType,
		ParentID: parentID,
		Offset:   open.Offset,
	}
	p.t.Add(n)
	p.push(token.TRSquare)
	defer p.pop()

	needSep := false
	for {
		tok := p.peek()
		switch {
		case tok == nil:
			p.unclosedArray(n, len(p.d))
			return n
		case tok.Type == token.TRSquare:
			p.i++
			n.Length = tok.End() - n.Offset
			return n
		case p.closesEnclosing(tok):
			p.unclosedArray(n, tok.Offset)
			return n
		}
		idx := len(n.Children)
		cid := pointer.JoinIndex(n.ID, idx)
		if needSep {
			if tok.Type != token.TComma {
				appendChild(n, strconv.Itoa(idx), p.parseError(cid, n.ID, expectedErr("',' or ']'", tok)))
				continue
			}
			p.i++
			needSep = false
			if next := p.peek(); next != nil && next.Type == token.TRSquare && !p.covered(n, tok) {
				e := p.errorNode(cid, n.ID, tok.Offset, len(tok.Bytes), ErrTrailingComma)
				appendChild(n, strconv.Itoa(idx), e)
			}
			continue
		}
		appendChild(n, strconv.Itoa(idx), p.parseValue(cid, n.ID))
		needSep = true
	}
}

func (p *parser) unclosedArray(n *tree.Node, end int) {
	idx := len(n.Children)
	e := p.errorNode(pointer.JoinIndex(n.ID, idx), n.ID, end, 0, unclosedErr("array"))
	appendChild(n, strconv.Itoa(idx), e)
	n.Length = end - n.Offset
}

// covered reports whether the last child of n already spans tok.
func (p *parser) covered(n *tree.Node, tok *token.Token) bool {
	if len(n.Children) == 0 {
		return false
	}
	c, ok := p.t.Nodes[n.Children[len(n.Children)-1]]
	return ok && c.End() > tok.Offset
}

func appendChild(n *tree.Node, key string, c *tree.Node) {
	n.ChildrenKeys = append(n.ChildrenKeys, key)
	n.Children = append(n.Children, c.ID)
}
