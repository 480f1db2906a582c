package value

import (
	"fmt"
	"reflect"
)

// Describe returns a short description of a callable's signature, for
// diagnostics only.
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case Func:
		return "func(...any) any"
	case *Expr:
		return "expr(" + x.String() + ")"
	case Producer:
		return fmt.Sprintf("producer(%T)", x)
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Func {
		return t.String()
	}
	return fmt.Sprintf("value(%T)", v)
}
