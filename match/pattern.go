package match

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/signadot/objmod/value"
)

type Kind int

const (
	LiteralKind Kind = iota
	RegexpKind
	FuncKind
	SeqKind
)

func (k Kind) String() string {
	switch k {
	case LiteralKind:
		return "literal"
	case RegexpKind:
		return "regexp"
	case FuncKind:
		return "func"
	case SeqKind:
		return "seq"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

// Regexper is anything which tests strings like a regular expression.
type Regexper interface {
	MatchString(string) bool
}

// Pattern is one of a literal value, a Regexper, a callable producing the
// value to compare against, or a sequence of patterns.
type Pattern struct {
	kind Kind
	lit  any
	re   Regexper
	fn   any
	seq  []Pattern
}

// Lit matches targets equal to v, structurally or after scalar coercion.
func Lit(v any) Pattern {
	return Pattern{kind: LiteralKind, lit: v}
}

// Regexp matches targets whose string form re accepts. A nil re, typed or
// not, is the literal nil.
func Regexp(re Regexper) Pattern {
	if isNil(re) {
		return Lit(nil)
	}
	return Pattern{kind: RegexpKind, re: re}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func Compile(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, err
	}
	return Regexp(re), nil
}

func MustCompile(expr string) Pattern {
	return Regexp(regexp.MustCompile(expr))
}

type globRe struct {
	g   glob.Glob
	src string
}

func (g *globRe) MatchString(s string) bool { return g.g.Match(s) }
func (g *globRe) String() string            { return "glob:" + g.src }

// Glob matches targets whose string form matches the shell style pattern.
func Glob(pattern string, separators ...rune) (Pattern, error) {
	g, err := glob.Compile(pattern, separators...)
	if err != nil {
		return Pattern{}, fmt.Errorf("error compiling glob %q: %w", pattern, err)
	}
	return Regexp(&globRe{g: g, src: pattern}), nil
}

// Func matches against the value f produces. f is called for every target
// with the trailing arguments given to the Matcher, see value.Resolve.
func Func(f any) Pattern {
	return Pattern{kind: FuncKind, fn: f}
}

// Expr is a Func pattern evaluating an expr-lang expression, see value.Expr.
func Expr(src string) (Pattern, error) {
	e, err := value.CompileExpr(src)
	if err != nil {
		return Pattern{}, err
	}
	return Func(e), nil
}

// Seq matches if any of ps matches. Each element is converted with Of.
func Seq(ps ...any) Pattern {
	seq := make([]Pattern, len(ps))
	for i := range ps {
		seq[i] = Of(ps[i])
	}
	return Pattern{kind: SeqKind, seq: seq}
}

// Of classifies v: patterns are kept, slices and arrays of any element type
// become sequences, regular expressions and globs become Regexp patterns,
// callables become Func patterns and anything else is a literal.
func Of(v any) Pattern {
	switch x := v.(type) {
	case Pattern:
		return x
	case *Pattern:
		if x == nil {
			return Lit(nil)
		}
		return *x
	case []Pattern:
		seq := make([]Pattern, len(x))
		copy(seq, x)
		return Pattern{kind: SeqKind, seq: seq}
	case []any:
		return Seq(x...)
	case glob.Glob:
		return Regexp(&globRe{g: x, src: fmt.Sprint(x)})
	case Regexper:
		return Regexp(x)
	}
	if value.IsCallable(v) {
		return Func(v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		ps := make([]any, rv.Len())
		for i := range ps {
			ps[i] = rv.Index(i).Interface()
		}
		return Seq(ps...)
	}
	return Lit(v)
}

func (p Pattern) Kind() Kind {
	return p.kind
}

// Patterns gives the leaves of p in order, flattening nested sequences.
func (p Pattern) Patterns() []Pattern {
	if p.kind != SeqKind {
		return []Pattern{p}
	}
	var res []Pattern
	for i := range p.seq {
		res = append(res, p.seq[i].Patterns()...)
	}
	return res
}

func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p Pattern) String() string {
	switch p.kind {
	case RegexpKind:
		if s, ok := p.re.(fmt.Stringer); ok {
			if _, isRe := p.re.(*regexp.Regexp); isRe {
				return "/" + s.String() + "/"
			}
			return s.String()
		}
		return fmt.Sprintf("regexp(%T)", p.re)
	case FuncKind:
		return value.Describe(p.fn)
	case SeqKind:
		parts := make([]string, len(p.seq))
		for i := range p.seq {
			parts[i] = p.seq[i].String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", p.lit)
	}
}

// resolve gives the value a leaf pattern compares against.
func (p Pattern) resolve(args []any) any {
	switch p.kind {
	case RegexpKind:
		return p.re
	case FuncKind:
		res := value.Resolve(p.fn, args...)
		switch x := res.(type) {
		case Pattern:
			if x.kind == RegexpKind {
				return x.re
			}
			if x.kind == LiteralKind {
				return x.lit
			}
		case glob.Glob:
			return &globRe{g: x, src: fmt.Sprint(x)}
		}
		return res
	default:
		return p.lit
	}
}
