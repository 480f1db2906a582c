package objpath

// Bound is a Resolver with its target supplied.
type Bound struct {
	r      *Resolver
	target any
}

func (b *Bound) Get() any {
	return b.r.Get(b.target)
}

func (b *Bound) Set(v any, args ...any) (any, error) {
	return b.r.Set(b.target, v, args...)
}

func (b *Bound) Add(by any, args ...any) (any, error) {
	return b.r.Add(b.target, by, args...)
}

func (b *Bound) Subtract(by any, args ...any) (any, error) {
	return b.r.Subtract(b.target, by, args...)
}

func (b *Bound) Multiply(by any, args ...any) (any, error) {
	return b.r.Multiply(b.target, by, args...)
}

func (b *Bound) Divide(by any, args ...any) (any, error) {
	return b.r.Divide(b.target, by, args...)
}

// Target returns the bound target.
func (b *Bound) Target() any {
	return b.target
}

func (b *Bound) Resolver() *Resolver {
	return b.r
}
