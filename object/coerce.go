package object

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ToNumber coerces v to a float64. nil is 0, booleans are 0 or 1, numeric
// strings are parsed (the empty string is 0) and everything else is NaN.
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return parseNumber(x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.String:
		return parseNumber(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return ToNumber(rv.Elem().Interface())
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ToString gives the string form of v used when testing v against a regular
// expression.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatNumber(x)
	case float32:
		return formatNumber(float64(x))
	case int:
		return strconv.Itoa(x)
	case fmt.Stringer:
		return x.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatNumber(rv.Float())
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return fmt.Sprint(v)
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// LooseEqual compares scalars with coercion: numbers compare numerically with
// numeric strings and booleans, strings compare by content and nil only equals
// nil. Containers are never loosely equal.
func LooseEqual(a, b any) bool {
	ta, tb := TypeOf(a), TypeOf(b)
	if ta == NullType || tb == NullType {
		return ta == tb
	}
	if !ta.IsLeaf() || !tb.IsLeaf() || ta == FuncType || tb == FuncType || ta == OtherType || tb == OtherType {
		return false
	}
	if ta == StringType && tb == StringType {
		return ToString(a) == ToString(b)
	}
	if ta == BoolType && tb == BoolType {
		return ToNumber(a) == ToNumber(b)
	}
	// remaining combinations compare as numbers; NaN never equals anything
	return ToNumber(a) == ToNumber(b)
}
