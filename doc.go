// Package keyby provides structural (value-based) equality over
// composite keys built from ordered sequences of heterogeneous values,
// on top of Go's native reference-equality maps and pointers.
//
// A Key is built from a sequence of values with New (or Must, which
// panics instead of returning an error). Two keys built from equal
// sequences compare equal under Equal, even though they are distinct
// *Key allocations:
//
//	a := keyby.Must("x", 1, somePointer)
//	b := keyby.Must("x", 1, somePointer)
//	keyby.Equal(a, b) // true
//	a == b            // false: distinct allocations
//
// The interning engine that makes this work (package internal/trie)
// keeps its bookkeeping bounded: once every pointer-identity component
// of a key and every live Key built from it are unreachable, the
// engine's internal state for that key is reclaimed by the garbage
// collector along with them.
//
// Packages container and record build structural maps, sets, and
// frozen record/tuple aggregates on top of Key.
package keyby
