// Package object provides the value model shared by the matcher, the path
// resolver and the modifier.
//
// # Values
//
// Values are plain Go values: nil, booleans, numbers, strings, containers and
// funcs. TypeOf classifies a value, Truth gives its truthiness (nil, false, 0,
// NaN and "" are false; containers are true even when empty), ToNumber and
// ToString coerce scalars and LooseEqual compares scalars with numeric/string
// coercion.
//
// # Containers
//
// Keys, Lookup and Assign give uniform string-keyed access to
//
//   - *Map, an ordered object keeping insertion order
//   - map types with string keys (keys in sorted order)
//   - yaml.MapSlice (document order, existing keys only for Assign)
//   - slices and arrays (keys "0" ... "n-1")
//   - pointers to structs (exported fields in declaration order, named by their
//     json tag if present)
//
// # Decoding
//
// Decode reads YAML or JSON into values whose objects are *Map, so that key
// order in the document is the key order seen by Keys.
//
// # Related Packages
//
//   - github.com/signadot/objmod/objpath - path addressed access built on Lookup and Assign
//   - github.com/signadot/objmod/match - key matching built on Keys
package object
