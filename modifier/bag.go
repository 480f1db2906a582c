package modifier

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/signadot/objmod/match"
	"github.com/signadot/objmod/object"
	"github.com/signadot/objmod/value"
)

var bagAliases = map[string]string{
	"description": "desc",
	"objectPath":  "path",
	"objectpath":  "path",
}

// FromBag builds a Modifier from a property bag with keys desc, amount,
// matcher, path and operation. description and objectPath are accepted for
// desc and path. The operation may be given by name or index and defaults to
// Add when absent. Unknown keys are ignored.
func FromBag(bag map[string]any) (*Modifier, error) {
	in := make(map[string]any, len(bag))
	for k, v := range bag {
		if alias, ok := bagAliases[k]; ok {
			if _, present := bag[alias]; present {
				continue
			}
			k = alias
		}
		in[k] = v
	}
	res := &Modifier{}
	if op, present := in["operation"]; !present || op == nil {
		delete(in, "operation")
		res.Operation = Add
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       operationHook,
		WeaklyTypedInput: true,
		Result:           res,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadModifier, err)
	}
	return res, nil
}

var operationType = reflect.TypeOf(Operation(0))

func operationHook(from, to reflect.Type, data any) (any, error) {
	if to != operationType {
		return data, nil
	}
	switch x := data.(type) {
	case Operation:
		return x, nil
	case string:
		return ParseOperation(x)
	}
	if object.TypeOf(data) != object.NumberType {
		return data, nil
	}
	f := object.ToNumber(data)
	i := int(f)
	if float64(i) != f || !operations.Valid(i) {
		return nil, fmt.Errorf("%w: %v", ErrBadOperation, data)
	}
	return opAt(i), nil
}

// Load reads a YAML or JSON document holding a list of modifier bags, or a
// single one. In documents, a matcher string "/re/" is a regular expression,
// "glob:pat" a glob and an amount string "=expr" an expression evaluated with
// no arguments (see value.Expr).
func Load(data []byte) ([]*Modifier, error) {
	doc, err := object.Decode(data)
	if err != nil {
		return nil, err
	}
	var items []any
	switch x := doc.(type) {
	case []any:
		items = x
	case *object.Map:
		items = []any{x}
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: got %s", ErrBadDocument, object.TypeOf(doc))
	}
	res := make([]*Modifier, 0, len(items))
	for i, item := range items {
		m, ok := item.(*object.Map)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is %s", ErrBadDocument, i, object.TypeOf(item))
		}
		bag, err := docBag(m)
		if err != nil {
			return nil, fmt.Errorf("modifier %d: %w", i, err)
		}
		mod, err := FromBag(bag)
		if err != nil {
			return nil, fmt.Errorf("modifier %d: %w", i, err)
		}
		res = append(res, mod)
	}
	return res, nil
}

func docBag(m *object.Map) (map[string]any, error) {
	bag := make(map[string]any, m.Len())
	var err error
	m.Range(func(k string, v any) bool {
		switch k {
		case "matcher":
			v, err = docPattern(v)
		case "amount":
			v, err = docAmount(v)
		}
		bag[k] = v
		return err == nil
	})
	return bag, err
}

func docPattern(v any) (any, error) {
	switch x := v.(type) {
	case string:
		if len(x) >= 2 && strings.HasPrefix(x, "/") && strings.HasSuffix(x, "/") {
			return match.Compile(x[1 : len(x)-1])
		}
		if g, ok := strings.CutPrefix(x, "glob:"); ok {
			return match.Glob(g)
		}
		return x, nil
	case []any:
		seq := make([]any, len(x))
		for i := range x {
			p, err := docPattern(x[i])
			if err != nil {
				return nil, err
			}
			seq[i] = p
		}
		return match.Seq(seq...), nil
	}
	return v, nil
}

func docAmount(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	src, ok := strings.CutPrefix(s, "=")
	if !ok {
		return v, nil
	}
	return value.CompileExpr(src)
}
