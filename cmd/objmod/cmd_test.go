package main

import (
	"bytes"
	"testing"

	"github.com/signadot/objmod"
	"github.com/signadot/objmod/match"
)

func TestPatternArg(t *testing.T) {
	tests := []struct {
		arg  string
		kind match.Kind
		hit  string
		miss string
	}{
		{arg: "/^web/", kind: match.RegexpKind, hit: "web-1", miss: "db"},
		{arg: "glob:w*", kind: match.RegexpKind, hit: "worker", miss: "db"},
		{arg: "db", kind: match.LiteralKind, hit: "db", miss: "web"},
		{arg: `="d" + "b"`, kind: match.FuncKind, hit: "db", miss: "web"},
	}
	for _, tc := range tests {
		p, err := patternArg(tc.arg)
		if err != nil {
			t.Errorf("%s: %v", tc.arg, err)
			continue
		}
		if p.Kind() != tc.kind {
			t.Errorf("%s: got kind %s want %s", tc.arg, p.Kind(), tc.kind)
		}
		m := match.New(p)
		if !m.Match(tc.hit) {
			t.Errorf("%s: expected match on %q", tc.arg, tc.hit)
		}
		if m.Match(tc.miss) {
			t.Errorf("%s: unexpected match on %q", tc.arg, tc.miss)
		}
	}
	if _, err := patternArg("/[/"); err == nil {
		t.Error("expected error on bad regexp")
	}
}

func TestWriteDiff(t *testing.T) {
	from, err := objmod.Decode([]byte("a: 1\nb: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	to, err := objmod.Decode([]byte("a: 1\nb: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{}
	buf := &bytes.Buffer{}
	changed, err := writeDiff(cfg, buf, from, from)
	if err != nil {
		t.Fatal(err)
	}
	if changed || buf.Len() != 0 {
		t.Errorf("expected no diff, got %q", buf.String())
	}
	changed, err = writeDiff(cfg, buf, from, to)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected a diff")
	}
	want := "  a: 1\n- b: 2\n+ b: 3\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
