package match

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/objmod/debug"
	"github.com/signadot/objmod/object"
)

// Matcher tests targets against a pattern under a quantifier. A Matcher is
// immutable.
type Matcher struct {
	pattern    Pattern
	leaves     []Pattern
	quantifier Quantifier
}

type Option func(*Matcher)

func WithQuantifier(q Quantifier) Option {
	return func(m *Matcher) { m.quantifier = q }
}

// New creates a Matcher for pattern, converted with Of. The quantifier
// defaults to AcceptMany.
func New(pattern any, opts ...Option) *Matcher {
	p := Of(pattern)
	m := &Matcher{
		pattern:    p,
		leaves:     p.Patterns(),
		quantifier: AcceptMany,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Matcher) Pattern() Pattern {
	return m.pattern
}

func (m *Matcher) Quantifier() Quantifier {
	return m.quantifier
}

// FindMany returns the targets matching some pattern, in order, each at most
// once. Func patterns are called with args for every target.
//
// Under AcceptAny the result holds only the first matching target. Under
// AcceptAll it is empty unless every target matched.
func (m *Matcher) FindMany(targets []any, args ...any) []any {
	res := make([]any, 0, len(targets))
	for _, target := range targets {
		for _, p := range m.leaves {
			if !test(target, p.resolve(args)) {
				continue
			}
			if debug.Match() {
				debug.Logf("%v matched %s under %s\n", target, p, m.quantifier)
			}
			if m.quantifier == AcceptAny {
				return []any{target}
			}
			res = append(res, target)
			break
		}
	}
	if m.quantifier == AcceptAll && len(res) != len(targets) {
		if debug.Match() {
			debug.Logf("%d of %d targets matched %s\n", len(res), len(targets), m.pattern)
		}
		return []any{}
	}
	return res
}

// Match reports whether target matches.
func (m *Matcher) Match(target any, args ...any) bool {
	return len(m.FindMany([]any{target}, args...)) != 0
}

// Find returns target if it matches, nil otherwise.
func (m *Matcher) Find(target any, args ...any) any {
	res := m.FindMany([]any{target}, args...)
	if len(res) == 0 {
		return nil
	}
	return res[0]
}

// MatchMany reports whether targets satisfy the quantifier: some target
// matches under AcceptAny and AcceptMany, every target under AcceptAll.
func (m *Matcher) MatchMany(targets []any, args ...any) bool {
	n := len(m.FindMany(targets, args...))
	if m.quantifier == AcceptAll {
		return n == len(targets)
	}
	return n > 0
}

func test(target, v any) bool {
	if deepEqual(target, v) {
		return true
	}
	if re, ok := v.(Regexper); ok && !isNil(re) && re.MatchString(object.ToString(target)) {
		return true
	}
	return object.LooseEqual(target, v)
}

var equalOpts = cmp.Options{
	cmp.Transformer("ordered", func(m *object.Map) map[string]any {
		if m == nil {
			return nil
		}
		res := make(map[string]any, m.Len())
		m.Range(func(k string, v any) bool {
			res[k] = v
			return true
		})
		return res
	}),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

func deepEqual(a, b any) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			eq = false
		}
	}()
	return cmp.Equal(a, b, equalOpts)
}
