// Package objpath addresses values inside nested objects by path strings.
//
// # Paths
//
// A path is a dot separated list of keys. Numeric keys may be spelled
// either "a.3.b" or "a[3].b"; Expand and Compress convert between the two
// spellings and Canonical gives the dotted form used for traversal. Paths are
// not validated: a malformed path simply fails to resolve. The empty path
// addresses the target itself.
//
// # Resolving
//
// A Resolver reads with Get, which walks the path and gives nil as soon as a
// step is missing or falsy (nil, false, 0, NaN or ""), and writes with Set,
// which walks to the parent container and assigns the last key. Set never
// creates intermediate containers; when the walk or the assignment fails it
// returns a *PathError matching ErrInvalidPath.
//
// Setting through the empty path returns the new value but leaves the target
// as it was.
//
// Add, Subtract, Multiply and Divide coerce the current value and the amount
// to numbers, store the result with Set and return the stored value, which is
// NaN when either side is not numeric.
//
// Bind gives a Bound accessor with the target supplied. Binding aliases the
// target, it does not copy it.
//
// # Related Packages
//
//   - github.com/signadot/objmod/object - the container model walked by a Resolver
//   - github.com/signadot/objmod/value - resolution of values and amounts given as funcs
package objpath
