package match

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/objmod/object"
	"github.com/signadot/objmod/value"
)

func TestQuantifiers(t *testing.T) {
	pattern := []any{3, 5}

	anyM := New(pattern, WithQuantifier(AcceptAny))
	if !anyM.Match(3) {
		t.Errorf("any: 3 should match")
	}
	if anyM.Match(1) {
		t.Errorf("any: 1 should not match")
	}
	if diff := cmp.Diff([]any{3}, anyM.FindMany([]any{1, 3, 5})); diff != "" {
		t.Errorf("any find many (-want +got):\n%s", diff)
	}
	if !anyM.MatchMany([]any{1, 3, 5}) {
		t.Errorf("any: match many should hold")
	}

	allM := New(pattern, WithQuantifier(AcceptAll))
	if allM.MatchMany([]any{1, 3, 5}) {
		t.Errorf("all: [1 3 5] should not match")
	}
	if got := allM.FindMany([]any{1, 3, 5}); got == nil || len(got) != 0 {
		t.Errorf("all: expected empty result, got %#v", got)
	}
	if !allM.MatchMany([]any{3, 3, 5}) {
		t.Errorf("all: [3 3 5] should match")
	}

	manyM := New(pattern)
	if manyM.Quantifier() != AcceptMany {
		t.Errorf("default quantifier %s", manyM.Quantifier())
	}
	if diff := cmp.Diff([]any{5}, manyM.FindMany([]any{4, 5})); diff != "" {
		t.Errorf("many find many (-want +got):\n%s", diff)
	}
	if manyM.Find(4) != nil || manyM.Find(5) != 5 {
		t.Errorf("many find")
	}

	typed := New([]int{3, 5})
	if diff := cmp.Diff([]any{3, 5}, typed.FindMany([]any{1, 3, 5})); diff != "" {
		t.Errorf("typed slice find many (-want +got):\n%s", diff)
	}
	typedAll := New([2]int{3, 5}, WithQuantifier(AcceptAll))
	if !typedAll.MatchMany([]any{5, 3}) || typedAll.MatchMany([]any{5, 4}) {
		t.Errorf("typed array under all")
	}
}

func TestFuncPattern(t *testing.T) {
	m := New(func(o int) int { return 3 + o })
	tests := []struct {
		name string
		args []any
		want []any
	}{
		{"no args", nil, []any{}},
		{"two", []any{2}, []any{5}},
		{"one", []any{1}, []any{4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, m.FindMany([]any{4, 5}, tc.args...)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestFuncPatternCalledPerTarget(t *testing.T) {
	calls := 0
	m := New(value.Func(func(args ...any) any {
		calls++
		return value.Arg(args, 0, "none")
	}))
	got := m.FindMany([]any{"a", "b", "none"}, "b")
	if diff := cmp.Diff([]any{"b"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestExprPattern(t *testing.T) {
	p, err := Expr(`"item-" + string(arg(0, 1))`)
	if err != nil {
		t.Fatal(err)
	}
	m := New(p)
	if !m.Match("item-1") {
		t.Errorf("expected default arg match")
	}
	if !m.Match("item-7", 7) {
		t.Errorf("expected arg match")
	}
	if m.Match("item-7") {
		t.Errorf("unexpected match")
	}
}

func TestMatchKinds(t *testing.T) {
	g, err := Glob("web-*")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		pattern any
		target  any
		want    bool
	}{
		{"literal", "x", "x", true},
		{"literal mismatch", "x", "y", false},
		{"loose number string", 3, "3", true},
		{"loose string number", "3", 3, true},
		{"loose float int", 3.0, 3, true},
		{"bool number", true, 1, true},
		{"null", nil, nil, true},
		{"null zero", nil, 0, false},
		{"regexp", regexp.MustCompile("x|z"), "xylophone", true},
		{"regexp mismatch", regexp.MustCompile("^y"), "xylophone", false},
		{"regexp number", MustCompile(`^\d+$`), 42, true},
		{"glob", g, "web-1", true},
		{"glob mismatch", g, "db-1", false},
		{"sequence", Seq("a", Seq("b", "c")), "c", true},
		{"structural", Lit(map[string]any{"a": []any{1, 2}}), map[string]any{"a": []any{1, 2}}, true},
		{"structural mismatch", Lit(map[string]any{"a": []any{1, 2}}), map[string]any{"a": []any{2, 1}}, false},
		{"ordered maps ignore order", Lit(object.MapOf("a", 1, "b", 2)), object.MapOf("b", 2, "a", 1), true},
		{"ordered maps differ", Lit(object.MapOf("a", 1)), object.MapOf("a", 2), false},
		{"containers never loose", Lit([]any{}), "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.pattern).Match(tc.target); got != tc.want {
				t.Errorf("match %s against %v: got %t", Of(tc.pattern), tc.target, got)
			}
		})
	}
}

func TestTargetOnce(t *testing.T) {
	m := New([]any{"a", MustCompile("a")})
	if diff := cmp.Diff([]any{"a", "a"}, m.FindMany([]any{"a", "b", "a"})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestOf(t *testing.T) {
	tests := []struct {
		in   any
		want Kind
	}{
		{1, LiteralKind},
		{"s", LiteralKind},
		{map[string]any{}, LiteralKind},
		{regexp.MustCompile("x"), RegexpKind},
		{func() int { return 1 }, FuncKind},
		{value.MustExpr("1"), FuncKind},
		{[]any{1, 2}, SeqKind},
		{[]Pattern{Lit(1)}, SeqKind},
		{Lit(func() {}), LiteralKind},
		{[]string{"x", "z"}, SeqKind},
		{[2]int{3, 5}, SeqKind},
		{(*regexp.Regexp)(nil), LiteralKind},
	}
	for _, tc := range tests {
		if got := Of(tc.in).Kind(); got != tc.want {
			t.Errorf("Of(%T) kind %s want %s", tc.in, got, tc.want)
		}
	}
}

func TestNilRegexp(t *testing.T) {
	var re *regexp.Regexp
	m := New(re)
	if m.Match("a") {
		t.Errorf("nil regexp matched a string")
	}
	if !m.Match(nil) {
		t.Errorf("nil regexp should match null")
	}
	if Regexp(re).Kind() != LiteralKind {
		t.Errorf("expected literal kind")
	}
}

func TestPatternString(t *testing.T) {
	g, err := Glob("a*")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		p    Pattern
		want string
	}{
		{Lit(3), "3"},
		{MustCompile("x|z"), "/x|z/"},
		{g, "glob:a*"},
		{Seq(1, "b"), "[1, b]"},
		{Func(value.MustExpr("1 + 1")), "expr(1 + 1)"},
	}
	for _, tc := range tests {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
		if d, err := tc.p.MarshalText(); err != nil || string(d) != tc.want {
			t.Errorf("text %q (%v) want %q", d, err, tc.want)
		}
	}
}
