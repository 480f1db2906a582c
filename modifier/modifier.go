package modifier

import (
	"fmt"

	"github.com/signadot/objmod/debug"
	"github.com/signadot/objmod/match"
	"github.com/signadot/objmod/object"
	"github.com/signadot/objmod/objpath"
	"github.com/signadot/objmod/value"
)

// Modifier edits the entries of an object whose keys match Matcher. Amount
// may be a number or anything value.Resolve accepts. Description is for
// people only.
type Modifier struct {
	Description string    `mapstructure:"desc" json:"desc,omitempty"`
	Amount      any       `mapstructure:"amount" json:"amount,omitempty"`
	Matcher     any       `mapstructure:"matcher" json:"matcher,omitempty"`
	Path        string    `mapstructure:"path" json:"path,omitempty"`
	Operation   Operation `mapstructure:"operation" json:"operation"`
}

func New(desc string, amount, matcher any, path string, op Operation) *Modifier {
	return &Modifier{
		Description: desc,
		Amount:      amount,
		Matcher:     matcher,
		Path:        path,
		Operation:   op,
	}
}

// ApplyTo applies the modifier to every entry of target whose key matches.
//
// Without a matcher there is nothing to select and target is unchanged.
// Without a path the operation is computed on the matched value alone and is
// not stored, so target is also unchanged.
//
// A failed write does not stop the remaining entries; the first failure is
// returned.
func (m *Modifier) ApplyTo(target any) error {
	if !object.Truth(m.Matcher) {
		if debug.Modify() {
			debug.Logf("modifier %q has no matcher\n", m.Description)
		}
		return nil
	}
	op := m.Operation
	entries := match.New(m.Matcher).EntriesOf(target)
	var first error
	for _, e := range entries {
		amount := value.Resolve(m.Amount)
		if m.Path == "" {
			res := compute(op, e.Value, amount)
			if debug.Modify() {
				debug.Logf("modifier %q: %s %q gives %v without a path, not stored\n", m.Description, op, e.Key, res)
			}
			continue
		}
		r := objpath.New(m.Path)
		var (
			res any
			err error
		)
		switch op {
		case Replace:
			res, err = r.Set(e.Value, amount)
		case Multiply:
			res, err = r.Multiply(e.Value, amount)
		default:
			res, err = r.Add(e.Value, amount)
		}
		if debug.Modify() {
			debug.Logf("modifier %q: %s %q.%s by %v gives %v (err %v)\n", m.Description, op, e.Key, m.Path, amount, res, err)
		}
		if err != nil && first == nil {
			first = fmt.Errorf("error applying %q to %q: %w", m.Description, e.Key, err)
		}
	}
	return first
}

func compute(op Operation, v, amount any) any {
	switch op {
	case Replace:
		return amount
	case Multiply:
		return object.ToNumber(v) * object.ToNumber(amount)
	default:
		return object.ToNumber(v) + object.ToNumber(amount)
	}
}
