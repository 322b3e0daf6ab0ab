package parse

import (
	"sync"

	"github.com/signadot/jsondoc/tree"
)

// Document holds the latest tree of an evolving text. Every Update
// produces a new tree whose version is one more than the previous one.
type Document struct {
	mu   sync.Mutex
	opts []ParseOption
	cur  *tree.Tree
}

func NewDocument(opts ...ParseOption) *Document {
	return &Document{opts: opts}
}

func (d *Document) Update(text string) *tree.Tree {
	d.mu.Lock()
	defer d.mu.Unlock()
	v := int64(1)
	if d.cur != nil {
		v = d.cur.Version + 1
	}
	opts := append(d.opts[:len(d.opts):len(d.opts)], ParseVersion(v))
	d.cur = Parse(text, opts...)
	return d.cur
}

// Tree returns the latest tree, or nil before the first Update.
func (d *Document) Tree() *tree.Tree {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cur
}

// Version returns the latest version, 0 before the first Update.
func (d *Document) Version() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cur == nil {
		return 0
	}
	return d.cur.Version
}
