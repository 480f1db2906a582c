package object

import "math"

// Truth reports whether v is truthy: nil, false, zero, NaN and the empty string
// are false, everything else, including empty containers, is true.
func Truth(v any) bool {
	switch TypeOf(v) {
	case ObjectType, ArrayType, FuncType, OtherType:
		return true
	case StringType:
		return ToString(v) != ""
	case NumberType:
		f := ToNumber(v)
		return f != 0 && !math.IsNaN(f)
	case BoolType:
		return ToNumber(v) != 0
	case NullType:
		return false
	default:
		panic("type")
	}
}
