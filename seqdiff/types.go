package seqdiff

import "fmt"

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(d []byte) error {
	switch string(d) {
	case "left":
		*s = Left
	case "right":
		*s = Right
	default:
		return fmt.Errorf("unknown side %q", d)
	}
	return nil
}

// Op classifies an edit script entry.
type Op int

const (
	Replace Op = iota
	Insert
	Delete
)

var opNames = map[Op]string{
	Replace: "replace",
	Insert:  "insert",
	Delete:  "delete",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Op) UnmarshalText(d []byte) error {
	for k, v := range opNames {
		if v == string(d) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown op %q", d)
}

// Entry is one modified element: Index is into the left sequence when
// Side is Left and into the right sequence otherwise.
type Entry struct {
	Index int  `json:"index"`
	Side  Side `json:"side"`
	Op    Op   `json:"diffType"`
}

// Range is a half open run [Start, End) of entries on one side.
type Range struct {
	Start int  `json:"start"`
	End   int  `json:"end"`
	Side  Side `json:"side"`
	Op    Op   `json:"diffType"`
}

func (r Range) Len() int {
	return r.End - r.Start
}
