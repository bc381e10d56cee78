package record

import (
	"sync"

	keyby "github.com/acutmore/proposal-keyby"
)

var tupleNamespace = &namespaceMarker{}

// Tuple is an immutable, fixed-length frozen aggregate: two Tuples of
// equal length and elementwise-equal (under keyby.Canonicalize)
// contents compare equal under keyby.Equal.
type Tuple struct {
	values  []any
	keyOnce func() *keyby.Key
}

// NewTuple builds a Tuple over vs.
func NewTuple(vs ...any) *Tuple {
	values := append([]any(nil), vs...)
	t := &Tuple{values: values}
	t.keyOnce = sync.OnceValue(func() *keyby.Key {
		full := make([]any, 0, 1+len(values))
		full = append(full, tupleNamespace)
		for _, v := range values {
			full = append(full, keyby.Canonicalize(v))
		}
		return keyby.Must(full...)
	})
	return t
}

// Len returns the number of elements in t.
func (t *Tuple) Len() int { return len(t.values) }

// At returns the element at index i.
func (t *Tuple) At(i int) any { return t.values[i] }

// Values returns a copy of t's elements in order.
func (t *Tuple) Values() []any {
	return append([]any(nil), t.values...)
}

// CanonicalKey implements keyby.Projection: the composite key is
// computed once, on first access, and cached thereafter.
func (t *Tuple) CanonicalKey() *keyby.Key { return t.keyOnce() }
