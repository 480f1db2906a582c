package objpath

import (
	"github.com/signadot/objmod/debug"
	"github.com/signadot/objmod/object"
	"github.com/signadot/objmod/value"
)

// Add adds the resolved amount by to the value at the path and returns the
// stored result.
func (r *Resolver) Add(target, by any, args ...any) (any, error) {
	return r.arith(target, by, args, "add", func(a, b float64) float64 { return a + b })
}

func (r *Resolver) Subtract(target, by any, args ...any) (any, error) {
	return r.arith(target, by, args, "subtract", func(a, b float64) float64 { return a - b })
}

func (r *Resolver) Multiply(target, by any, args ...any) (any, error) {
	return r.arith(target, by, args, "multiply", func(a, b float64) float64 { return a * b })
}

// Divide follows float division: x/0 is an infinity and 0/0 is NaN.
func (r *Resolver) Divide(target, by any, args ...any) (any, error) {
	return r.arith(target, by, args, "divide", func(a, b float64) float64 { return a / b })
}

func (r *Resolver) arith(target, by any, args []any, name string, f func(a, b float64) float64) (any, error) {
	amount := object.ToNumber(value.Resolve(by, args...))
	current := object.ToNumber(r.Get(target))
	res := f(current, amount)
	if debug.Path() {
		debug.Logf("%s %q: %v, %v -> %v\n", name, r.path, current, amount, res)
	}
	_, err := r.Set(target, res)
	return r.lookup(target), err
}
