package trie

import "reflect"

// Category partitions an input value for the purposes of descending the
// interning trie.
type Category int

const (
	// CategoryEternal values compare structurally and cannot be held
	// weakly: primitives, strings, comparable structs, nil.
	CategoryEternal Category = iota
	// CategoryIdentityBearing values have stable referential identity
	// and can be tracked weakly: non-nil Go pointers.
	CategoryIdentityBearing
)

// Classify partitions v. Any non-nil pointer is identity-bearing;
// everything else, including nil, is eternal.
func Classify(v any) Category {
	if v == nil {
		return CategoryEternal
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return CategoryIdentityBearing
	}
	return CategoryEternal
}

// Keyable reports whether v can act as a trie edge at all: either a
// non-nil pointer (identity-bearing) or a comparable value (eternal).
// Slices, maps, and funcs fall into neither bucket and are rejected
// here rather than silently coerced.
func Keyable(v any) bool {
	if Classify(v) == CategoryIdentityBearing {
		return true
	}
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
