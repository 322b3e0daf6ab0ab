package libdiff

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTree = errors.New("invalid tree")
	ErrPatch       = errors.New("cannot express as json patch")
)

type DiffType int

const (
	None DiffType = iota
	Insert
	Delete
	Replace
)

var diffTypeNames = map[DiffType]string{
	None:    "none",
	Insert:  "insert",
	Delete:  "delete",
	Replace: "replace",
}

func (t DiffType) String() string {
	if s, ok := diffTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("DiffType(%d)", int(t))
}

func (t DiffType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *DiffType) UnmarshalText(d []byte) error {
	for k, v := range diffTypeNames {
		if v == string(d) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown diff type %q", d)
}

// Reverse swaps insert and delete.
func (t DiffType) Reverse() DiffType {
	switch t {
	case Insert:
		return Delete
	case Delete:
		return Insert
	}
	return t
}

// Side tells which tree an id belongs to.
type Side int

const (
	Both Side = iota
	Left
	Right
)

var sideNames = map[Side]string{
	Both:  "both",
	Left:  "left",
	Right: "right",
}

func (s Side) String() string {
	if n, ok := sideNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(d []byte) error {
	for k, v := range sideNames {
		if v == string(d) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown side %q", d)
}

func (s Side) Reverse() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	}
	return s
}

type Diff struct {
	ID   string   `json:"id"`
	Type DiffType `json:"diffType"`
	Side Side     `json:"side"`
}

func (d Diff) String() string {
	if d.Side == Both {
		return d.Type.String() + " " + d.ID
	}
	return d.Type.String() + " " + d.Side.String() + " " + d.ID
}

// TextRange is a changed byte span [Start, End) of a leaf's source
// text, in the coordinates of the document on Side.
type TextRange struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Type  DiffType `json:"diffType"`
	Side  Side     `json:"side"`
}

type Result struct {
	Diffs []Diff `json:"diffs"`
	// TextDiffs holds inline ranges of replaced string and number
	// leaves, when text compare is enabled.
	TextDiffs map[string][]TextRange `json:"textDiffs,omitempty"`
}

// Changed reports whether any entry is not None.
func (r *Result) Changed() bool {
	for _, d := range r.Diffs {
		if d.Type != None {
			return true
		}
	}
	return false
}

// Lookup returns the entries for id.
func (r *Result) Lookup(id string) []Diff {
	var res []Diff
	for _, d := range r.Diffs {
		if d.ID == id {
			res = append(res, d)
		}
	}
	return res
}
