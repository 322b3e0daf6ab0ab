package tree

import "errors"

var (
	ErrSnapshot  = errors.New("bad snapshot")
	ErrNotNumber = errors.New("not a number")
)
