package tree

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/signadot/jsondoc/pointer"
)

// ErrorWindow describes a syntax error for display: the byte span of
// the offending text and previews of the text around it.
type ErrorWindow struct {
	Offset  int       `json:"offset"`
	Length  int       `json:"length"`
	Context [3]string `json:"context"`
	Message string    `json:"message,omitempty"`
}

type Node struct {
	ID       string
	Type     Type
	ParentID string

	// ChildrenKeys holds the unescaped object keys, duplicates
	// included, or the decimal indices of array elements. Children
	// holds the matching child ids.
	ChildrenKeys []string
	Children     []string

	// byte span of the value
	Offset int
	Length int

	// byte span of the key token; KeyLength is 0 when there is none.
	KeyOffset int
	KeyLength int

	// RawText is the source text of scalars and error nodes.
	RawText string
	// Value is the decoded value of strings, booleans and null.
	Value any

	Errors []ErrorWindow
}

func (n *Node) End() int {
	return n.Offset + n.Length
}

func (n *Node) HasKey() bool {
	return n.KeyLength > 0
}

// Start is the offset of the key when there is one, otherwise of the
// value.
func (n *Node) Start() int {
	if n.HasKey() && n.KeyOffset < n.Offset {
		return n.KeyOffset
	}
	return n.Offset
}

// Key returns the unescaped last key of the node's id.
func (n *Node) Key() (string, bool) {
	return pointer.LastKey(n.ID)
}

// Path returns the unescaped keys leading to the node.
func (n *Node) Path() []string {
	p, _ := pointer.ToPath(n.ID)
	return p
}

func (n *Node) IsRoot() bool {
	return n.ID == pointer.Root
}

func (n *Node) String() string {
	return fmt.Sprintf("%s(%s)@%d+%d", n.ID, n.Type, n.Offset, n.Length)
}

// Number returns the raw text of a number node.
func (n *Node) Number() (json.Number, error) {
	if n.Type != NumberType {
		return "", fmt.Errorf("%w: %s is %s", ErrNotNumber, n.ID, n.Type)
	}
	return json.Number(n.RawText), nil
}

func (n *Node) Float64() (float64, error) {
	num, err := n.Number()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(string(num), 64)
}

func (n *Node) Int64() (int64, error) {
	num, err := n.Number()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(string(num), 10, 64)
}

// BigFloat decodes a number node without loss of precision.
func (n *Node) BigFloat() (*big.Float, error) {
	num, err := n.Number()
	if err != nil {
		return nil, err
	}
	f, _, err := big.ParseFloat(string(num), 10, uint(max(64, 4*len(num))), big.ToNearestEven)
	return f, err
}

func (n *Node) clone() *Node {
	c := *n
	c.ChildrenKeys = append([]string(nil), n.ChildrenKeys...)
	c.Children = append([]string(nil), n.Children...)
	c.Errors = append([]ErrorWindow(nil), n.Errors...)
	return &c
}
