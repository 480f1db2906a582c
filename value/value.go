package value

import (
	"reflect"

	"github.com/signadot/objmod/debug"
)

// Func is a callable producing a value from trailing arguments.
type Func func(args ...any) any

// Producer is implemented by values which compute themselves from trailing
// arguments.
type Producer interface {
	Produce(args ...any) any
}

// IsCallable reports whether Resolve would invoke v rather than return it.
func IsCallable(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case Func:
		return x != nil
	case Producer:
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// Resolve returns candidate unchanged if it is not callable, otherwise the
// result of invoking it with args.
func Resolve(candidate any, args ...any) any {
	if !IsCallable(candidate) {
		return candidate
	}
	res := invoke(candidate, args)
	if debug.Value() {
		debug.Logf("resolved %s with %d args to %v\n", Describe(candidate), len(args), res)
	}
	return res
}

func invoke(candidate any, args []any) any {
	switch f := candidate.(type) {
	case Func:
		return f(args...)
	case func(...any) any:
		return f(args...)
	case func() any:
		return f()
	case Producer:
		return f.Produce(args...)
	}
	return call(reflect.ValueOf(candidate), args)
}

func call(fn reflect.Value, args []any) any {
	ft := fn.Type()
	n := ft.NumIn()
	fixed := n
	if ft.IsVariadic() {
		fixed = n - 1
	}
	in := make([]reflect.Value, 0, max(n, len(args)))
	for i := 0; i < fixed; i++ {
		in = append(in, argValue(ft.In(i), args, i))
	}
	if ft.IsVariadic() {
		elem := ft.In(n - 1).Elem()
		for i := fixed; i < len(args); i++ {
			in = append(in, convert(elem, args[i]))
		}
	}
	out := fn.Call(in)
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}

func argValue(t reflect.Type, args []any, i int) reflect.Value {
	if i >= len(args) {
		return reflect.Zero(t)
	}
	return convert(t, args[i])
}

func convert(t reflect.Type, v any) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv
	}
	if isNumeric(rv.Kind()) && isNumeric(t.Kind()) {
		return rv.Convert(t)
	}
	if rv.Kind() == reflect.String && t.Kind() == reflect.String {
		return rv.Convert(t)
	}
	return reflect.Zero(t)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Arg returns args[i], or def if there is no such argument or it is nil.
func Arg(args []any, i int, def any) any {
	if i < 0 || i >= len(args) || args[i] == nil {
		return def
	}
	return args[i]
}
