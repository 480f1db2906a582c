// Package objmod selects and edits entries of nested objects.
//
// The work is split across packages:
//
//   - match tests values, and the keys of objects, against patterns
//   - objpath reads and writes values inside objects by path
//   - modifier combines the two into declarative edits
//   - object holds the value model and YAML/JSON decoding
//
// This package applies modifiers to documents:
//
//	doc, _ := objmod.Decode([]byte("web: {replicas: 2}\ndb: {replicas: 1}"))
//	mods, _ := modifier.Load([]byte("- {matcher: /^web/, path: replicas, amount: 2}"))
//	after, _ := objmod.Preview(doc, mods...)
//	patch, _ := objmod.MergePatch(doc, after) // {"web":{"replicas":4}}
//
// Apply edits in place. Preview edits a deep copy and leaves its input alone.
//
// # Related Packages
//
//   - github.com/signadot/objmod/cmd/objmod - command line access to get, set, keys and apply
//   - github.com/signadot/objmod/libdiff - line diffs of encoded documents
package objmod
