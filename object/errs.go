package object

import "errors"

var (
	ErrNotContainer  = errors.New("not a container")
	ErrIndex         = errors.New("index out of range")
	ErrNoField       = errors.New("no such field")
	ErrNotAssignable = errors.New("value not assignable")
)
