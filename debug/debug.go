package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
)

type debug struct {
	Match  bool `env:"OBJMOD_DEBUG_MATCH"`
	Path   bool `env:"OBJMOD_DEBUG_PATH"`
	Modify bool `env:"OBJMOD_DEBUG_MODIFY"`
	Value  bool `env:"OBJMOD_DEBUG_VALUE"`
}

var (
	d   *debug
	out io.Writer = os.Stderr
)

func init() {
	d = load()
}

func load() *debug {
	res := &debug{}
	if err := env.Parse(res); err != nil {
		// a malformed flag turns that flag off rather than failing init
		fmt.Fprintf(os.Stderr, "objmod debug: %v\n", err)
		return &debug{}
	}
	return res
}

// SetOutput redirects debug output, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

func Match() bool {
	return d.Match
}
func Path() bool {
	return d.Path
}
func Modify() bool {
	return d.Modify
}
func Value() bool {
	return d.Value
}

// LogAny writes v as a line of JSON, or with %v if it does not encode.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
