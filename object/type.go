package object

import (
	"fmt"
	"reflect"
)

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
	FuncType
	OtherType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ArrayType:  "Array",
		StringType: "String",
		NumberType: "Number",
		BoolType:   "Bool",
		NullType:   "Null",
		FuncType:   "Func",
		OtherType:  "Other",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Number": NumberType,
		"String": StringType,
		"Array":  ArrayType,
		"Object": ObjectType,
		"Func":   FuncType,
		"Other":  OtherType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// TypeOf classifies v. Nil pointers, maps, slices and funcs are NullType.
func TypeOf(v any) Type {
	switch v.(type) {
	case nil:
		return NullType
	case *Map:
		if v.(*Map) == nil {
			return NullType
		}
		return ObjectType
	case bool:
		return BoolType
	case string:
		return StringType
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return NumberType
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return BoolType
	case reflect.String:
		return StringType
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return NumberType
	case reflect.Map:
		if rv.IsNil() {
			return NullType
		}
		return ObjectType
	case reflect.Slice:
		if rv.IsNil() {
			return NullType
		}
		return ArrayType
	case reflect.Array:
		return ArrayType
	case reflect.Struct:
		return ObjectType
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NullType
		}
		return TypeOf(rv.Elem().Interface())
	case reflect.Func:
		if rv.IsNil() {
			return NullType
		}
		return FuncType
	}
	return OtherType
}
