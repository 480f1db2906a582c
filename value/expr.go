package value

import (
	"fmt"

	"github.com/signadot/objmod/debug"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expr is a compiled expr-lang expression used as a Producer. The trailing
// arguments of a resolution are visible to the expression as the array args
// and through arg(i, default):
//
//	3 + arg(0, 0)
//	len(args) > 1 ? args[1] : "none"
type Expr struct {
	src string
	prg *vm.Program
}

func CompileExpr(src string) (*Expr, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", src, err)
	}
	return &Expr{src: src, prg: prg}, nil
}

func MustExpr(src string) *Expr {
	e, err := CompileExpr(src)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Expr) String() string {
	return e.src
}

// MarshalText gives the document form of e, "=" followed by its source.
func (e *Expr) MarshalText() ([]byte, error) {
	return []byte("=" + e.src), nil
}

// Eval runs the expression with args.
func (e *Expr) Eval(args ...any) (any, error) {
	return expr.Run(e.prg, exprEnv(args))
}

// Produce runs the expression with args. A runtime error produces nil.
func (e *Expr) Produce(args ...any) any {
	res, err := e.Eval(args...)
	if err != nil {
		if debug.Value() {
			debug.Logf("expr %q failed: %v\n", e.src, err)
		}
		return nil
	}
	return res
}

func exprEnv(args []any) map[string]any {
	if args == nil {
		args = []any{}
	}
	return map[string]any{
		"args": args,
		"arg": func(i int, def any) any {
			return Arg(args, i, def)
		},
	}
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(exprEnv(nil)),
	}
}
