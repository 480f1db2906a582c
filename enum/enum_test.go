package enum

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testEnum() *Enum {
	return New(
		Entry{Name: "REPLACEMENT", Description: "Replace the value rather than modify"},
		Entry{Name: "ADDITION", Data: 42},
		Entry{Name: "MULTIPLICATION"},
	)
}

func TestLookup(t *testing.T) {
	e := testEnum()
	if e.Len() != 3 {
		t.Fatalf("len %d", e.Len())
	}
	for i, name := range []string{"REPLACEMENT", "ADDITION", "MULTIPLICATION"} {
		if got := e.Name(i); got != name {
			t.Errorf("name %d: got %q want %q", i, got, name)
		}
		j, ok := e.Index(name)
		if !ok || j != i {
			t.Errorf("index %q: got %d, %t", name, j, ok)
		}
	}
	if e.Name(3) != "" || e.Name(-1) != "" {
		t.Errorf("out of range names should be empty")
	}
	if _, ok := e.Index("SUBTRACTION"); ok {
		t.Errorf("unexpected entry")
	}
}

func TestDescriptionAndData(t *testing.T) {
	e := testEnum()
	if got := e.Description(0); got != "Replace the value rather than modify" {
		t.Errorf("got %q", got)
	}
	if got := e.Description(1); got != "ADDITION" {
		t.Errorf("missing description should default to name, got %q", got)
	}
	if got := e.Data(1); got != 42 {
		t.Errorf("got data %v", got)
	}
	if got := e.Data(2); got != nil {
		t.Errorf("got data %v", got)
	}
}

func TestFold(t *testing.T) {
	e := Names("MATCH_ANY", "MATCH_ALL", "MATCH_MANY")
	tests := []struct {
		in   string
		want int
	}{
		{"MATCH_ALL", 1},
		{"match_many", 2},
		{"any", 0},
		{"All", 1},
	}
	for _, tc := range tests {
		got, err := e.Fold(tc.in, "MATCH_")
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %d want %d", tc.in, got, tc.want)
		}
	}
	if _, err := e.Fold("none", "MATCH_"); !errors.Is(err, ErrNoSuchEntry) {
		t.Errorf("expected ErrNoSuchEntry, got %v", err)
	}
}

func TestEntries(t *testing.T) {
	e := testEnum()
	entries := e.Entries()
	entries[0].Name = "changed"
	if e.Name(0) != "REPLACEMENT" {
		t.Errorf("Entries should return a copy")
	}
	want := []string{"REPLACEMENT", "ADDITION", "MULTIPLICATION"}
	if diff := cmp.Diff(want, e.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
}
