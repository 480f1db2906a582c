package objmod

import (
	"fmt"

	"github.com/huandu/go-clone"
	"github.com/signadot/objmod/debug"
	"github.com/signadot/objmod/modifier"
)

// Apply applies mods to target in order. All modifiers are applied; the
// first error is returned.
func Apply(target any, mods ...*modifier.Modifier) error {
	var first error
	for i, m := range mods {
		if m == nil {
			continue
		}
		if debug.Modify() {
			debug.Logf("applying modifier %d: ", i)
			debug.LogAny(m)
		}
		err := m.ApplyTo(target)
		if err == nil {
			continue
		}
		if debug.Modify() {
			debug.Logf("modifier %d: %v\n", i, err)
		}
		if first == nil {
			first = fmt.Errorf("modifier %d: %w", i, err)
		}
	}
	return first
}

// Preview applies mods to a deep copy of target and returns the copy.
func Preview(target any, mods ...*modifier.Modifier) (any, error) {
	res := clone.Clone(target)
	err := Apply(res, mods...)
	return res, err
}
