package object

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
)

// Decode parses a YAML or JSON document. Objects become *Map in document
// order, arrays become []any and integers become int when they fit.
func Decode(data []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	return FromYAML(v), nil
}

// Encode writes v as YAML, or as JSON if asJSON is set. Whole floats are
// written as integers.
func Encode(v any, asJSON bool) ([]byte, error) {
	opts := []yaml.EncodeOption{yaml.AutoInt()}
	if asJSON {
		opts = append(opts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(ToYAML(v), opts...)
	if err != nil {
		return nil, fmt.Errorf("error encoding document: %w", err)
	}
	return d, nil
}

// FromYAML converts values decoded by go-yaml into the object model.
func FromYAML(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		m := NewMap()
		for _, item := range x {
			m.Set(ToString(item.Key), FromYAML(item.Value))
		}
		return m
	case map[string]any:
		m := NewMap()
		for _, k := range Keys(x) {
			m.Set(k, FromYAML(x[k]))
		}
		return m
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = FromYAML(x[i])
		}
		return res
	case uint64:
		if x > math.MaxInt {
			return float64(x)
		}
		return int(x)
	case int64:
		if x > math.MaxInt || x < math.MinInt {
			return float64(x)
		}
		return int(x)
	case uint:
		if x > math.MaxInt {
			return float64(x)
		}
		return int(x)
	}
	return v
}

// ToYAML converts *Map values to yaml.MapSlice, recursively, for encoding.
func ToYAML(v any) any {
	switch x := v.(type) {
	case *Map:
		if x == nil {
			return nil
		}
		res := make(yaml.MapSlice, 0, x.Len())
		x.Range(func(k string, v any) bool {
			res = append(res, yaml.MapItem{Key: k, Value: ToYAML(v)})
			return true
		})
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = ToYAML(x[i])
		}
		return res
	case map[string]any:
		res := make(yaml.MapSlice, 0, len(x))
		for _, k := range Keys(x) {
			res = append(res, yaml.MapItem{Key: k, Value: ToYAML(x[k])})
		}
		return res
	}
	return v
}
