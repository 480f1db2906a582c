package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type linesTest struct {
	from, to string
	lines    []Line
}

var linesTests = []linesTest{
	{
		from:  "",
		to:    "",
		lines: nil,
	},
	{
		from: "a\nb\n",
		to:   "a\nb\n",
		lines: []Line{
			{Equal, "a"},
			{Equal, "b"},
		},
	},
	{
		from: "a\nb\nc\n",
		to:   "a\nx\nc\n",
		lines: []Line{
			{Equal, "a"},
			{Delete, "b"},
			{Insert, "x"},
			{Equal, "c"},
		},
	},
	{
		from: "",
		to:   "a\n",
		lines: []Line{
			{Insert, "a"},
		},
	},
	{
		from: "a\nb\n",
		to:   "b\n",
		lines: []Line{
			{Delete, "a"},
			{Equal, "b"},
		},
	},
}

func TestLines(t *testing.T) {
	for i := range linesTests {
		linesTest := &linesTests[i]
		got := Lines(linesTest.from, linesTest.to)
		if diff := cmp.Diff(linesTest.lines, got); diff != "" {
			t.Errorf("%q -> %q (-want +got):\n%s", linesTest.from, linesTest.to, diff)
		}
		changed := linesTest.from != linesTest.to
		if Changed(got) != changed {
			t.Errorf("%q -> %q: changed %t", linesTest.from, linesTest.to, !changed)
		}
	}
}

func TestLineString(t *testing.T) {
	if s := (Line{Insert, "x: 1"}).String(); s != "+ x: 1" {
		t.Errorf("got %q", s)
	}
	if s := (Line{Equal, "y"}).String(); s != "  y" {
		t.Errorf("got %q", s)
	}
	if Delete.String() != "delete" {
		t.Errorf("got %q", Delete.String())
	}
}
