// Package weakref implements a counting map whose keys are held weakly:
// an entry does not prevent its key from being garbage collected, and
// the map notices when that happens.
//
// It exists because the interning trie in internal/trie needs to key a
// node's children on arbitrary caller-supplied pointer types that
// differ at every node. Go's weak.Pointer[T] can't be instantiated with
// a T discovered only at runtime, so this package falls back to the
// older runtime.SetFinalizer plus a uintptr-keyed table: the table
// itself never holds a Go pointer to the key, so it can't keep it
// alive.
package weakref

import (
	"reflect"
	"runtime"
	"sync"
)

// Map is a map from pointer-typed keys to values of type V. Keys are
// held weakly; once the garbage collector reclaims one, its entry is
// removed and, if that removal empties the map, onEmpty fires once.
//
// A Map is not safe for concurrent use by itself: callers must hold mu
// around every method call except the internally-triggered reclamation
// path, which acquires mu itself because it runs on the runtime's
// finalizer goroutine, concurrently with any caller.
type Map[V any] struct {
	mu      *sync.Mutex
	entries map[uintptr]V
	onEmpty func()
}

// NewMap returns an empty Map guarded by mu. onEmpty, if non-nil, is
// called (without mu held) whenever the map's live entry count drops
// from one to zero.
func NewMap[V any](mu *sync.Mutex, onEmpty func()) *Map[V] {
	return &Map[V]{
		mu:      mu,
		entries: make(map[uintptr]V),
		onEmpty: onEmpty,
	}
}

// AddrOf returns the pointer value of key as a uintptr, for use as a
// map index that does not itself retain key. It is exported so callers
// that need to pre-compute an edge's address (to later call DeleteAddr
// without holding the original key reference) can share this logic.
func AddrOf(key any) (uintptr, bool) {
	rv := reflect.ValueOf(key)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return 0, false
	}
	return rv.Pointer(), true
}

func addrOf(key any) (uintptr, bool) {
	return AddrOf(key)
}

// Size reports the number of live entries. Caller must hold mu.
func (m *Map[V]) Size() int {
	return len(m.entries)
}

// Get returns the value stored for key, if any. Caller must hold mu.
func (m *Map[V]) Get(key any) (V, bool) {
	addr, ok := addrOf(key)
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := m.entries[addr]
	return v, ok
}

// Has reports whether key has a live entry. Caller must hold mu.
func (m *Map[V]) Has(key any) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores val for key and arranges to be notified when key is
// reclaimed. Caller must hold mu.
func (m *Map[V]) Set(key any, val V) {
	addr, ok := addrOf(key)
	if !ok {
		panic("weakref: Set called with a non-pointer key")
	}
	_, existed := m.entries[addr]
	m.entries[addr] = val
	if !existed {
		runtime.SetFinalizer(key, func(any) { m.reclaim(addr) })
	}
}

// LoadOrCreate returns the existing value for key if present, otherwise
// calls create, stores its result, and returns that. Caller must hold
// mu.
func (m *Map[V]) LoadOrCreate(key any, create func() V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	v := create()
	m.Set(key, v)
	return v
}

// Delete removes the entry for key, if any, and reports whether an
// entry was removed. It also cancels key's pending reclamation
// notification. Caller must hold mu.
func (m *Map[V]) Delete(key any) bool {
	addr, ok := addrOf(key)
	if !ok {
		return false
	}
	runtime.SetFinalizer(key, nil)
	return m.deleteAddr(addr)
}

// DeleteAddr removes the entry at addr, if any, without requiring the
// original key object (which may no longer be reachable from the
// caller). It is idempotent: deleting an address with no entry is a
// harmless no-op, which is what lets the trie purge a still-reachable
// edge early (see internal/trie) without having to cancel that key's
// finalizer. Caller must hold mu.
func (m *Map[V]) DeleteAddr(addr uintptr) bool {
	return m.deleteAddr(addr)
}

func (m *Map[V]) deleteAddr(addr uintptr) bool {
	if _, ok := m.entries[addr]; !ok {
		return false
	}
	delete(m.entries, addr)
	return true
}

// reclaim runs on the runtime's finalizer goroutine when a key is
// collected. It acquires mu itself since no caller holds it here.
func (m *Map[V]) reclaim(addr uintptr) {
	m.mu.Lock()
	removed := m.deleteAddr(addr)
	empty := removed && len(m.entries) == 0
	m.mu.Unlock()
	if empty && m.onEmpty != nil {
		m.onEmpty()
	}
}
