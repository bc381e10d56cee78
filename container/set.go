package container

import "iter"

// Set holds a set of unique values of type K, compared the same way a
// Map[K, struct{}] configured with the same options would compare its
// keys.
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet returns an empty Set configured by opts.
func NewSet[K any](opts ...Option[K]) *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}](opts...)}
}

// Len returns the number of elements in the set.
func (s *Set[K]) Len() int {
	if s == nil {
		return 0
	}
	return s.m.Len()
}

// Has reports whether k is in the set.
func (s *Set[K]) Has(k K) bool {
	if s == nil {
		return false
	}
	return s.m.Has(k)
}

// Add inserts k, reporting whether it was already present.
func (s *Set[K]) Add(k K) (existed bool) {
	_, existed = s.m.Set(k, struct{}{})
	return existed
}

// Delete removes k, reporting whether it was present.
func (s *Set[K]) Delete(k K) bool {
	_, deleted := s.m.Delete(k)
	return deleted
}

// All returns an iterator over the set's elements in unspecified order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s == nil {
			return
		}
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
