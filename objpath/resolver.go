package objpath

import (
	"fmt"

	"github.com/signadot/objmod/debug"
	"github.com/signadot/objmod/object"
	"github.com/signadot/objmod/value"
)

// Resolver reads and writes the value at a fixed path.
type Resolver struct {
	path string
	segs []string
}

func New(path string) *Resolver {
	return &Resolver{path: path, segs: Segments(path)}
}

// Path returns the path as given to New.
func (r *Resolver) Path() string {
	return r.path
}

// String returns the canonical path.
func (r *Resolver) String() string {
	return Canonical(r.path)
}

// Get returns the value at the path in target, or nil if some step of the path
// is missing or falsy. The empty path gives target itself.
func (r *Resolver) Get(target any) any {
	if len(r.segs) == 0 {
		return target
	}
	cur := target
	for i, seg := range r.segs {
		if object.TypeOf(cur) == object.NullType {
			r.logMiss(i, "null")
			return nil
		}
		v, ok := object.Lookup(cur, seg)
		if !ok || !object.Truth(v) {
			r.logMiss(i, "falsy")
			return nil
		}
		cur = v
	}
	return cur
}

func (r *Resolver) logMiss(i int, why string) {
	if debug.Path() {
		debug.Logf("get %q stopped at %q: %s\n", r.path, r.segs[i], why)
	}
}

// Set resolves v with args and assigns it at the path in target, returning
// the assigned value. Nothing is created along the way: every step before the
// last must exist and be a container.
//
// With the empty path, Set returns the resolved value and target is left
// unchanged.
func (r *Resolver) Set(target, v any, args ...any) (any, error) {
	val := value.Resolve(v, args...)
	if len(r.segs) == 0 {
		return val, nil
	}
	n := len(r.segs) - 1
	parent, err := r.walk(target, n)
	if err != nil {
		return nil, err
	}
	if err := object.Assign(parent, r.segs[n], val); err != nil {
		if debug.Path() {
			debug.Logf("set %q failed: %v\n", r.path, err)
		}
		return nil, newPathError(r.path, r.segs[n], err)
	}
	if debug.Path() {
		debug.Logf("set %q to %v\n", r.path, val)
	}
	return val, nil
}

// walk follows the first n segments without regard to truthiness.
func (r *Resolver) walk(target any, n int) (any, error) {
	cur := target
	for _, seg := range r.segs[:n] {
		if object.TypeOf(cur) == object.NullType {
			return nil, newPathError(r.path, seg, fmt.Errorf("%w: cannot read %q of null", object.ErrNotContainer, seg))
		}
		v, ok := object.Lookup(cur, seg)
		if !ok {
			return nil, newPathError(r.path, seg, fmt.Errorf("%w at %q in %s", errMissing, seg, object.TypeOf(cur)))
		}
		cur = v
	}
	return cur, nil
}

// lookup reads the value at the path in target without regard to truthiness.
func (r *Resolver) lookup(target any) any {
	if len(r.segs) == 0 {
		return target
	}
	n := len(r.segs) - 1
	parent, err := r.walk(target, n)
	if err != nil {
		return nil
	}
	v, _ := object.Lookup(parent, r.segs[n])
	return v
}

// Bind returns an accessor for the path in target. The resolver itself is not
// modified.
func (r *Resolver) Bind(target any) *Bound {
	return &Bound{r: New(r.path), target: target}
}
