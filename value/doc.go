// Package value resolves "function or value" inputs.
//
// Many inputs in objmod may be given either as a plain value or as something
// that computes the value: a pattern, an amount to add, a value to set. Resolve
// returns plain values unchanged and invokes callables with the trailing
// arguments supplied by the caller:
//
//	value.Resolve(3)                                           // 3
//	value.Resolve(func(o int) int { return 3 + o }, 2)         // 5
//	value.Resolve(value.MustExpr("3 + arg(0, 0)"), 1)          // 4
//
// Callables are Func values, Producer implementations (such as compiled
// expressions, see Expr) and Go funcs of any signature. Go funcs are called by
// reflection: missing arguments are passed as zero values, surplus arguments are
// dropped and arguments of the wrong type are replaced by zero values, so
// func(o int) behaves like a parameter with a default of 0.
//
// # Related Packages
//
//   - github.com/signadot/objmod/match - patterns are resolved before comparison
//   - github.com/signadot/objmod/objpath - values and amounts are resolved before writing
package value
