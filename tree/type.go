package tree

import (
	"fmt"
	"slices"
)

type Type int

const (
	ObjectType Type = iota
	ArrayType
	StringType
	NumberType
	BoolType
	NullType
	ErrorType
)

var typeNames = map[Type]string{
	ObjectType: "object",
	ArrayType:  "array",
	StringType: "string",
	NumberType: "number",
	BoolType:   "boolean",
	NullType:   "null",
	ErrorType:  "error",
}

func Types() []Type {
	res := make([]Type, 0, len(typeNames))
	for t := range typeNames {
		res = append(res, t)
	}
	slices.Sort(res)
	return res
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (t Type) MarshalText() ([]byte, error) {
	s, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown type %d", int(t))
	}
	return []byte(s), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for k, v := range typeNames {
		if v == string(d) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown type %q", d)
}

func (t Type) IsContainer() bool {
	return t == ObjectType || t == ArrayType
}

// IsLeaf reports whether t is a scalar. Error nodes are neither.
func (t Type) IsLeaf() bool {
	switch t {
	case StringType, NumberType, BoolType, NullType:
		return true
	}
	return false
}
