// Package match tests values against patterns.
//
// # Patterns
//
// A Pattern is a literal, a regular expression (anything with a
// MatchString(string) bool method, including globs from Glob), a func
// producing the value to compare against, or a sequence of patterns. Of
// builds a Pattern from a plain Go value, so most callers pass values
// directly to New:
//
//	m := match.New([]any{3, regexp.MustCompile("^x"), func(o int) int { return 3 + o }})
//
// A target matches a resolved pattern value if it is structurally equal to
// it, if the value is a regular expression accepting the string form of the
// target, or if both are scalars which are equal after coercion (3 == "3").
//
// # Quantifiers
//
// FindMany scans targets in order and, for each, the patterns in order. A
// target appears at most once in the result. The Matcher quantifier decides
// what is returned:
//
//   - AcceptAny returns the first matching target alone
//   - AcceptAll returns the matches only if every target matched
//   - AcceptMany, the default, returns every matching target
//
// # Objects
//
// KeysOf, ValuesOf and EntriesOf match the keys of a container, in the key
// order given by object.Keys.
//
// # Related Packages
//
//   - github.com/signadot/objmod/object - value coercion and container keys
//   - github.com/signadot/objmod/value - resolution of func patterns
//   - github.com/signadot/objmod/modifier - edits to the entries selected by a Matcher
package match
