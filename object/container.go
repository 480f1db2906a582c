package object

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Keys returns the own keys of v in order, or nil if v is not a container.
func Keys(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case *Map:
		if x == nil {
			return nil
		}
		return x.Keys()
	case yaml.MapSlice:
		res := make([]string, len(x))
		for i := range x {
			res[i] = ToString(x[i].Key)
		}
		return res
	case map[string]any:
		return slices.Sorted(maps.Keys(x))
	case []any:
		return indexKeys(len(x))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		res := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			res = append(res, k.String())
		}
		slices.Sort(res)
		return res
	case reflect.Slice, reflect.Array:
		return indexKeys(rv.Len())
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil
		}
		return fieldKeys(rv.Elem().Type())
	case reflect.Struct:
		return fieldKeys(rv.Type())
	}
	return nil
}

func indexKeys(n int) []string {
	res := make([]string, n)
	for i := range n {
		res[i] = strconv.Itoa(i)
	}
	return res
}

func fieldKeys(t reflect.Type) []string {
	var res []string
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		res = append(res, fieldKey(f))
	}
	return res
}

func fieldKey(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func fieldByKey(sv reflect.Value, key string) (reflect.Value, bool) {
	t := sv.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if fieldKey(f) == key || f.Name == key {
			return sv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// index parses key as a canonical non-negative array index.
func index(key string, n int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, i < n
}

// Lookup returns the value at key in container v.
func Lookup(v any, key string) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case *Map:
		if x == nil {
			return nil, false
		}
		return x.Get(key)
	case yaml.MapSlice:
		for i := range x {
			if ToString(x[i].Key) == key {
				return x[i].Value, true
			}
		}
		return nil, false
	case map[string]any:
		res, ok := x[key]
		return res, ok
	case []any:
		i, ok := index(key, len(x))
		if !ok {
			return nil, false
		}
		return x[i], true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		res := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !res.IsValid() {
			return nil, false
		}
		return res.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := index(key, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil, false
		}
		rv = rv.Elem()
		fallthrough
	case reflect.Struct:
		f, ok := fieldByKey(rv, key)
		if !ok {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

// Assign sets key in container v to val. Maps gain new keys; slices, arrays
// and structs only accept existing indices and fields. Nothing is created on
// the way: v itself must already be a container.
func Assign(v any, key string, val any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrNotAssignable, r)
		}
	}()
	switch x := v.(type) {
	case nil:
		return fmt.Errorf("%w: cannot set %q on null", ErrNotContainer, key)
	case *Map:
		if x == nil {
			return fmt.Errorf("%w: cannot set %q on null", ErrNotContainer, key)
		}
		x.Set(key, val)
		return nil
	case yaml.MapSlice:
		for i := range x {
			if ToString(x[i].Key) == key {
				x[i].Value = val
				return nil
			}
		}
		return fmt.Errorf("%w: cannot add key %q to a map slice", ErrNotAssignable, key)
	case map[string]any:
		if x == nil {
			return fmt.Errorf("%w: cannot set %q on nil map", ErrNotContainer, key)
		}
		x[key] = val
		return nil
	case []any:
		i, ok := index(key, len(x))
		if !ok {
			return fmt.Errorf("%w: %q (len %d)", ErrIndex, key, len(x))
		}
		x[i] = val
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return fmt.Errorf("%w: map with %s keys", ErrNotContainer, kt)
		}
		if rv.IsNil() {
			return fmt.Errorf("%w: cannot set %q on nil map", ErrNotContainer, key)
		}
		ev, err := convertTo(rv.Type().Elem(), val)
		if err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(key).Convert(kt), ev)
		return nil
	case reflect.Slice:
		i, ok := index(key, rv.Len())
		if !ok {
			return fmt.Errorf("%w: %q (len %d)", ErrIndex, key, rv.Len())
		}
		ev, err := convertTo(rv.Type().Elem(), val)
		if err != nil {
			return err
		}
		rv.Index(i).Set(ev)
		return nil
	case reflect.Pointer:
		if rv.IsNil() {
			return fmt.Errorf("%w: cannot set %q on nil pointer", ErrNotContainer, key)
		}
		ev := rv.Elem()
		switch ev.Kind() {
		case reflect.Struct:
			f, ok := fieldByKey(ev, key)
			if !ok {
				return fmt.Errorf("%w: %q in %s", ErrNoField, key, ev.Type())
			}
			fv, err := convertTo(f.Type(), val)
			if err != nil {
				return err
			}
			f.Set(fv)
			return nil
		case reflect.Array:
			i, ok := index(key, ev.Len())
			if !ok {
				return fmt.Errorf("%w: %q (len %d)", ErrIndex, key, ev.Len())
			}
			elt, err := convertTo(ev.Type().Elem(), val)
			if err != nil {
				return err
			}
			ev.Index(i).Set(elt)
			return nil
		}
	}
	return fmt.Errorf("%w: cannot set %q on %s", ErrNotContainer, key, TypeOf(v))
}

func convertTo(t reflect.Type, val any) (reflect.Value, error) {
	if val == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(val)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	if TypeOf(val) == NumberType && isNumberKind(t.Kind()) {
		if !fitsNumber(t, val) {
			return reflect.Value{}, fmt.Errorf("%w: %v to %s", ErrNotAssignable, val, t)
		}
		return rv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %T to %s", ErrNotAssignable, val, t)
}

// fitsNumber reports whether val converts to numeric type t without loss of
// integrality or range. NaN and infinities only fit float types.
func fitsNumber(t reflect.Type, val any) bool {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	f := ToNumber(val)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return false
	}
	slot := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return false
		}
		return !slot.OverflowInt(int64(f))
	default:
		if f < 0 || f >= math.MaxUint64 {
			return false
		}
		return !slot.OverflowUint(uint64(f))
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
