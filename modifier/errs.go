package modifier

import "errors"

var (
	ErrBadModifier = errors.New("bad modifier")
	ErrBadDocument = errors.New("modifiers must be a list of objects")
)
