package tree

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/signadot/jsondoc/pointer"
)

// Snapshot is the plain value form of a Tree.
type Snapshot struct {
	Root    string                   `json:"root"`
	Nodes   map[string]*NodeSnapshot `json:"nodes"`
	Version int64                    `json:"version"`
	Errors  []ErrorWindow            `json:"errors"`
	Text    string                   `json:"text,omitempty"`
	Nest    map[string]*Snapshot     `json:"nest,omitempty"`
}

type NodeSnapshot struct {
	ID           string        `json:"id"`
	Type         Type          `json:"type"`
	ParentID     string        `json:"parentId,omitempty"`
	ChildrenKeys []string      `json:"childrenKeys,omitempty"`
	Children     []string      `json:"children,omitempty"`
	Offset       int           `json:"offset"`
	Length       int           `json:"length"`
	KeyOffset    *int          `json:"keyOffset,omitempty"`
	KeyLength    *int          `json:"keyLength,omitempty"`
	RawText      string        `json:"rawText,omitempty"`
	Value        any           `json:"value,omitempty"`
	Errors       []ErrorWindow `json:"errors,omitempty"`
}

func (t *Tree) ToObject() *Snapshot {
	s := &Snapshot{
		Root:    t.Root,
		Nodes:   make(map[string]*NodeSnapshot, len(t.Nodes)),
		Version: t.Version,
		Errors:  append([]ErrorWindow{}, t.Errors...),
		Text:    t.Text,
	}
	for id, n := range t.Nodes {
		ns := &NodeSnapshot{
			ID:           n.ID,
			Type:         n.Type,
			ParentID:     n.ParentID,
			ChildrenKeys: append([]string(nil), n.ChildrenKeys...),
			Children:     append([]string(nil), n.Children...),
			Offset:       n.Offset,
			Length:       n.Length,
			RawText:      n.RawText,
			Value:        n.Value,
			Errors:       append([]ErrorWindow(nil), n.Errors...),
		}
		if n.HasKey() {
			ko, kl := n.KeyOffset, n.KeyLength
			ns.KeyOffset, ns.KeyLength = &ko, &kl
		}
		s.Nodes[id] = ns
	}
	if len(t.NestNodeMap) != 0 {
		s.Nest = make(map[string]*Snapshot, len(t.NestNodeMap))
		for id, st := range t.NestNodeMap {
			s.Nest[id] = st.ToObject()
		}
	}
	return s
}

// FromObject rebuilds a tree from a snapshot. It does not validate the
// node graph: dangling or cyclic references are left for consumers,
// which skip what they cannot resolve.
func FromObject(s *Snapshot) *Tree {
	t := New(s.Text, s.Version)
	if s.Root != "" {
		t.Root = s.Root
	}
	t.Errors = append([]ErrorWindow(nil), s.Errors...)
	for id, ns := range s.Nodes {
		if ns == nil {
			continue
		}
		n := &Node{
			ID:           ns.ID,
			Type:         ns.Type,
			ParentID:     ns.ParentID,
			ChildrenKeys: append([]string(nil), ns.ChildrenKeys...),
			Children:     append([]string(nil), ns.Children...),
			Offset:       ns.Offset,
			Length:       ns.Length,
			RawText:      ns.RawText,
			Value:        ns.Value,
			Errors:       append([]ErrorWindow(nil), ns.Errors...),
		}
		if n.ID == "" {
			n.ID = id
		}
		if n.Type == StringType && n.Value == nil {
			// omitted as empty
			n.Value = ""
		}
		if ns.KeyOffset != nil && ns.KeyLength != nil {
			n.KeyOffset, n.KeyLength = *ns.KeyOffset, *ns.KeyLength
		}
		if len(n.Children) == 0 && len(n.ChildrenKeys) != 0 {
			n.Children = ChildIDs(n.ID, n.Type, n.ChildrenKeys, func(k string) bool {
				return s.errorMember(n.ID, k)
			})
		}
		t.Nodes[id] = n
	}
	for id, ss := range s.Nest {
		if ss == nil {
			continue
		}
		if t.NestNodeMap == nil {
			t.NestNodeMap = map[string]*Tree{}
		}
		t.NestNodeMap[id] = FromObject(ss)
	}
	return t
}

// ChildIDs derives child ids from keys for snapshots that omit them.
// The last occurrence of a duplicated key owns the plain id. Keys for
// which isErr reports true name error members; isErr may be nil.
func ChildIDs(parentID string, typ Type, keys []string, isErr func(key string) bool) []string {
	res := make([]string, len(keys))
	if typ == ArrayType {
		for i := range keys {
			res[i] = pointer.JoinIndex(parentID, i)
		}
		return res
	}
	errKey := make([]bool, len(keys))
	total := map[string]int{}
	for i, k := range keys {
		if isErr != nil && isErr(k) {
			errKey[i] = true
			continue
		}
		total[k]++
	}
	seen := map[string]int{}
	for i, k := range keys {
		if errKey[i] {
			res[i] = pointer.JoinSegment(parentID, k)
			continue
		}
		occ := seen[k]
		seen[k]++
		if occ == total[k]-1 {
			res[i] = pointer.Join(parentID, k)
			continue
		}
		res[i] = pointer.JoinSegment(parentID, pointer.OccurrenceSegment(k, occ))
	}
	return res
}

// errorMember reports whether key names an error member of parentID in
// s: an error node exists under the synthetic segment and no member
// exists under the escaped key.
func (s *Snapshot) errorMember(parentID, key string) bool {
	if !pointer.IsErrorSegment(key) {
		return false
	}
	if _, ok := s.Nodes[pointer.Join(parentID, key)]; ok {
		return false
	}
	ns := s.Nodes[pointer.JoinSegment(parentID, key)]
	return ns != nil && ns.Type == ErrorType
}

func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToObject())
}

func (t *Tree) UnmarshalJSON(d []byte) error {
	s := &Snapshot{}
	if err := json.Unmarshal(d, s); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshot, err)
	}
	*t = *FromObject(s)
	return nil
}

// Clone returns a deep copy of t with the given version.
func (t *Tree) Clone(version int64) *Tree {
	c := New(t.Text, version)
	c.Root = t.Root
	c.Errors = append([]ErrorWindow(nil), t.Errors...)
	for id, n := range t.Nodes {
		c.Nodes[id] = n.clone()
	}
	for id, st := range t.NestNodeMap {
		if c.NestNodeMap == nil {
			c.NestNodeMap = map[string]*Tree{}
		}
		c.NestNodeMap[id] = st.Clone(st.Version)
	}
	return c
}

func (s *Snapshot) String() string {
	return "snapshot(v" + strconv.FormatInt(s.Version, 10) + ", " + strconv.Itoa(len(s.Nodes)) + " nodes)"
}
