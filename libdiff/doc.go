// Package libdiff computes line diffs between encoded documents.
//
// # Usage
//
//	before, _ := object.Encode(doc, false)
//	after, _ := object.Encode(edited, false)
//	for _, line := range libdiff.Lines(string(before), string(after)) {
//		fmt.Println(line)
//	}
//
// # Related Packages
//
//   - github.com/signadot/objmod/object - document encoding
//   - github.com/signadot/objmod/cmd/objmod - prints colored diffs with apply -diff
package libdiff
