package objmod

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/objmod/modifier"
	"github.com/signadot/objmod/objpath"
)

type applyTest struct {
	in, mods, out string
}

var applyTests = []applyTest{
	{
		in:   "a: 1",
		mods: "[]",
		out:  "a: 1",
	},
	{
		in:   "web: {replicas: 2}\ndb: {replicas: 1}",
		mods: "- {matcher: /^web/, path: replicas, amount: 2}",
		out:  "web: {replicas: 4}\ndb: {replicas: 1}",
	},
	{
		in: "web: {replicas: 2}\ndb: {replicas: 1}",
		mods: `
- {matcher: /./, path: replicas, amount: 1}
- {matcher: db, path: replicas, amount: 10, operation: multiply}
- {matcher: web, path: replicas, amount: zero, operation: replace}
`,
		out: "web: {replicas: zero}\ndb: {replicas: 20}",
	},
	{
		in:   "a: {n: 1}\nb: {n: 2}",
		mods: "- {matcher: [a, b], path: n, amount: '=2 * 3'}",
		out:  "a: {n: 7}\nb: {n: 8}",
	},
	{
		in:   "a: {n: 1}",
		mods: "- {path: n, amount: 5}",
		out:  "a: {n: 1}",
	},
	{
		in:   "a: {n: 1}",
		mods: "- {matcher: a, amount: 5}",
		out:  "a: {n: 1}",
	},
}

func mustDecode(t *testing.T, s string) any {
	t.Helper()
	v, err := Decode([]byte(s))
	if err != nil {
		t.Fatalf("# doc\n%s\n---\n# %v", s, err)
	}
	return v
}

func mustEncode(t *testing.T, v any) string {
	t.Helper()
	d, err := Encode(v, true)
	if err != nil {
		t.Fatal(err)
	}
	return strings.TrimSpace(string(d))
}

func TestApply(t *testing.T) {
	for i := range applyTests {
		applyTest := &applyTests[i]
		doc := mustDecode(t, applyTest.in)
		mods, err := modifier.Load([]byte(applyTest.mods))
		if err != nil {
			t.Errorf("# mods\n%s\n---\n# %v", applyTest.mods, err)
			continue
		}
		if err := Apply(doc, mods...); err != nil {
			t.Errorf("apply %s: %v", applyTest.mods, err)
			continue
		}
		got, want := mustEncode(t, doc), mustEncode(t, mustDecode(t, applyTest.out))
		if got != want {
			t.Errorf("# in\n%s\n# mods\n%s\n# got\n%s\n# want\n%s", applyTest.in, applyTest.mods, got, want)
		}
	}
}

func TestApplyErrors(t *testing.T) {
	doc := mustDecode(t, "a: 1\nb: {n: 1}")
	mods := []*modifier.Modifier{
		modifier.New("bad", 1, "a", "n", modifier.Add),
		nil,
		modifier.New("good", 1, "b", "n", modifier.Add),
	}
	err := Apply(doc, mods...)
	if !errors.Is(err, objpath.ErrInvalidPath) {
		t.Fatalf("expected invalid path, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "modifier 0:") {
		t.Errorf("unexpected error %q", err)
	}
	if got, want := mustEncode(t, doc), mustEncode(t, mustDecode(t, "a: 1\nb: {n: 2}")); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestPreview(t *testing.T) {
	doc := mustDecode(t, "web: {replicas: 2, tags: [a]}\ndb: {replicas: 1}")
	before := mustEncode(t, doc)
	mods, err := modifier.Load([]byte("- {matcher: 'glob:w*', path: replicas, amount: 3, operation: multiply}"))
	if err != nil {
		t.Fatal(err)
	}
	after, err := Preview(doc, mods...)
	if err != nil {
		t.Fatal(err)
	}
	if got := mustEncode(t, doc); got != before {
		t.Errorf("preview changed its input:\n%s", got)
	}
	want := mustEncode(t, mustDecode(t, "web: {replicas: 6, tags: [a]}\ndb: {replicas: 1}"))
	if got := mustEncode(t, after); got != want {
		t.Errorf("got %s want %s", got, want)
	}

	patch, err := MergePatch(doc, after)
	if err != nil {
		t.Fatal(err)
	}
	if string(patch) != `{"web":{"replicas":6}}` {
		t.Errorf("unexpected merge patch %s", patch)
	}
}

func TestMergePatch(t *testing.T) {
	tests := []struct {
		before, after, patch string
	}{
		{"a: 1", "a: 1", "{}"},
		{"a: 1\nb: 2", "a: 1", `{"b":null}`},
		{"a: {x: 1}", "a: {x: 1, y: [1, 2]}", `{"a":{"y":[1,2]}}`},
	}
	for _, tc := range tests {
		patch, err := MergePatch(mustDecode(t, tc.before), mustDecode(t, tc.after))
		if err != nil {
			t.Errorf("%q -> %q: %v", tc.before, tc.after, err)
			continue
		}
		if string(patch) != tc.patch {
			t.Errorf("%q -> %q: got %s want %s", tc.before, tc.after, patch, tc.patch)
		}
	}
	if _, err := MergePatch(mustDecode(t, "a: 1"), mustDecode(t, "[1]")); err == nil {
		t.Errorf("expected error patching an object into an array")
	}
}
