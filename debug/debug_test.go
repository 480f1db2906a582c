package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoadFlags(t *testing.T) {
	t.Setenv("OBJMOD_DEBUG_MATCH", "true")
	t.Setenv("OBJMOD_DEBUG_PATH", "1")
	t.Setenv("OBJMOD_DEBUG_MODIFY", "false")
	res := load()
	if !res.Match || !res.Path {
		t.Errorf("expected match and path flags set, got %+v", res)
	}
	if res.Modify || res.Value {
		t.Errorf("expected modify and value flags unset, got %+v", res)
	}
}

func TestLoadBadFlag(t *testing.T) {
	t.Setenv("OBJMOD_DEBUG_MATCH", "sometimes")
	res := load()
	if res.Match {
		t.Errorf("malformed flag should be off")
	}
}

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("entries %s at %s\n", map[string]any{"x": 1}, "a.b")
	got := buf.String()
	if !strings.Contains(got, `"x": 1`) {
		t.Errorf("expected json rendering of map, got %q", got)
	}
	if !strings.HasSuffix(got, "at a.b\n") {
		t.Errorf("unexpected suffix in %q", got)
	}
}

func TestLogAny(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	LogAny(map[string]any{"path": "a.b", "n": 2})
	LogAny(func() {})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != `{"n":2,"path":"a.b"}` {
		t.Errorf("got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0x") {
		t.Errorf("expected %%v fallback, got %q", lines[1])
	}
}
