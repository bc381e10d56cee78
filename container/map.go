// Package container implements a structural-container façade, in the
// spirit of the acutmore/proposal-keyby JS proposal's Map/Set: Map and
// Set wrap an ordinary Go map with an optional keyBy projection, so that
// keys compare structurally instead of by reference when the projection
// yields a *keyby.Key.
//
// The shape of this package is grounded on rogpeppe/generic/anyhash's
// Map[K, V, H]: a NewMap constructor, At/Get/Set/Delete/Len, and
// iter.Seq/iter.Seq2-based All/Keys/Values. Where anyhash parameterizes
// on a caller-supplied Hasher, container parameterizes on an optional
// keyBy projection instead — a key's identity (keyby.Identity) is already
// its own comparable Go value, so there is no hashing step to provide.
package container

import (
	"iter"

	keyby "github.com/acutmore/proposal-keyby"
)

// entry associates a value with the original (unprojected) key, so
// iteration yields what the caller inserted, never an internal token.
type entry[K, V any] struct {
	key K
	val V
}

// Map is a mapping from keys K to values V. Without a KeyBy option,
// keys are compared the way a plain Go map would compare them (K must
// be comparable in that case, or Set/Get will panic, matching Go map
// semantics). With KeyBy, the configured projection is applied to each
// key before lookup/storage; if the projection yields a *keyby.Key, its
// identity token becomes the real internal key.
type Map[K, V any] struct {
	projection func(K) any
	table      map[any]entry[K, V]
}

// NewMap returns an empty Map configured by opts.
func NewMap[K, V any](opts ...Option[K]) *Map[K, V] {
	m := &Map[K, V]{table: make(map[any]entry[K, V])}
	for _, opt := range opts {
		opt(&m.projection)
	}
	return m
}

func (m *Map[K, V]) realKey(k K) any {
	if m.projection == nil {
		return k
	}
	return realKeyOf(m.projection(k))
}

// realKeyOf substitutes a projected value's identity token if it is (or
// canonicalizes to) a *keyby.Key.
func realKeyOf(projected any) any {
	projected = keyby.Canonicalize(projected)
	if k, ok := projected.(*keyby.Key); ok {
		return keyby.Identity(k)
	}
	return projected
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.table)
}

// At returns the value stored for k, or the zero value of V if absent.
func (m *Map[K, V]) At(k K) V {
	v, _ := m.Get(k)
	return v
}

// Get returns the value stored for k and reports whether it was
// present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	e, ok := m.table[m.realKey(k)]
	return e.val, ok
}

// Has reports whether k has an entry.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Set stores v for k, returning the previous value (or the zero value
// of V) and whether an entry already existed.
func (m *Map[K, V]) Set(k K, v V) (prev V, existed bool) {
	rk := m.realKey(k)
	e, ok := m.table[rk]
	m.table[rk] = entry[K, V]{key: k, val: v}
	return e.val, ok
}

// Delete removes the entry for k, if present, and reports whether it
// was found.
func (m *Map[K, V]) Delete(k K) (old V, deleted bool) {
	rk := m.realKey(k)
	e, ok := m.table[rk]
	if ok {
		delete(m.table, rk)
	}
	return e.val, ok
}

// All returns an iterator over (key, value) pairs in unspecified order,
// yielding the original keys passed to Set, never internal tokens.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, e := range m.table {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Keys returns an iterator over the map's original keys.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the map's values.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
