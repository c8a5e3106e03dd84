package hashtable

import (
	"iter"

	"github.com/ivanobilenchi/gulib/hashfunc"
)

// Set is a generic open-addressing hash set. The zero value is ready to
// use once its Hash/Equal pair is supplied via NewSet or one of the
// typed constructors; a Set built any other way will panic on first use.
type Set[K comparable] struct {
	t Table[K, struct{}]
}

// NewSet creates an empty set using the given hash and equality
// functions for K.
func NewSet[K comparable](hash HashFunc[K], equal EqualFunc[K]) *Set[K] {
	return &Set[K]{t: Table[K, struct{}]{hash: hash, equal: equal}}
}

// NewStringSet creates an empty set of strings, hashed with xxHash64.
func NewStringSet() *Set[string] {
	return NewSet[string](hashfunc.XXHash64String, func(a, b string) bool { return a == b })
}

// NewInt64Set creates an empty set of int64s.
func NewInt64Set() *Set[int64] {
	return NewSet[int64](
		func(k int64) uint64 { return hashfunc.HashInt64(uint64(k)) },
		func(a, b int64) bool { return a == b },
	)
}

// NewUint64Set creates an empty set of uint64s.
func NewUint64Set() *Set[uint64] {
	return NewSet[uint64](hashfunc.HashInt64, func(a, b uint64) bool { return a == b })
}

// Len returns the number of elements in the set.
func (s *Set[K]) Len() int { return s.t.Len() }

// IsEmpty reports whether the set has no elements.
func (s *Set[K]) IsEmpty() bool { return s.t.Len() == 0 }

// Contains reports whether key is a member of the set.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.t.find(key)
	return ok
}

// Insert adds key to the set, reporting whether it was newly added.
func (s *Set[K]) Insert(key K) bool {
	_, inserted := s.t.put(key)
	return inserted
}

// InsertAll adds every element of keys to the set, returning the count
// of elements that were newly added.
func (s *Set[K]) InsertAll(keys ...K) int {
	added := 0
	for _, k := range keys {
		if s.Insert(k) {
			added++
		}
	}
	return added
}

// Remove removes key from the set, reporting whether it was present.
func (s *Set[K]) Remove(key K) bool {
	i, ok := s.t.find(key)
	if !ok {
		return false
	}
	s.t.deleteAt(i)
	return true
}

// SetCollector attaches a metrics collector to the set's underlying table.
func (s *Set[K]) SetCollector(c Collector) { s.t.SetCollector(c) }

// Clear empties the set without releasing its bucket storage.
func (s *Set[K]) Clear() { s.t.Clear() }

// Deinit releases the set's bucket storage and resets it to empty.
func (s *Set[K]) Deinit() { s.t.Deinit() }

// Shrink compacts the set's bucket count down to its current load.
func (s *Set[K]) Shrink() { s.t.Shrink() }

// Clone returns an independent copy of the set.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{t: s.t.clone()}
}

// Each calls fn for every member, stopping early if fn returns false.
func (s *Set[K]) Each(fn func(k K) bool) {
	s.t.each(func(_ int, k K, _ struct{}) bool { return fn(k) })
}

// All returns a range-over-func iterator over the set's members, letting
// callers write `for k := range s.All() { ... }`.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.Each(yield)
	}
}

// Keys returns the set's members as a slice, in unspecified order.
func (s *Set[K]) Keys() []K {
	out := make([]K, 0, s.Len())
	s.Each(func(k K) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Union adds every member of other into s.
func (s *Set[K]) Union(other *Set[K]) {
	other.Each(func(k K) bool {
		s.Insert(k)
		return true
	})
}

// Intersect removes from s every member not also present in other.
func (s *Set[K]) Intersect(other *Set[K]) {
	for _, k := range s.Keys() {
		if !other.Contains(k) {
			s.Remove(k)
		}
	}
}

// Subtract removes from s every member also present in other. Iterates
// whichever of s/other is smaller, so the cost is bounded by the smaller
// set's size rather than always the larger one's.
func (s *Set[K]) Subtract(other *Set[K]) {
	if other.Len() < s.Len() {
		other.Each(func(k K) bool {
			s.Remove(k)
			return true
		})
		return
	}
	for _, k := range s.Keys() {
		if other.Contains(k) {
			s.Remove(k)
		}
	}
}

// IsSuperset reports whether s contains every member of other.
func (s *Set[K]) IsSuperset(other *Set[K]) bool {
	superset := true
	other.Each(func(k K) bool {
		if !s.Contains(k) {
			superset = false
			return false
		}
		return true
	})
	return superset
}

// Equals reports whether s and other contain exactly the same elements.
func (s *Set[K]) Equals(other *Set[K]) bool {
	return s.Len() == other.Len() && s.IsSuperset(other)
}

// Hash returns an order-independent combined hash of the set's members,
// suitable for using a Set itself as a key (e.g. nesting sets in a Set
// of sets). Computed as the XOR of every member's hash, which is
// commutative and associative and therefore insensitive to bucket
// layout or iteration order.
func (s *Set[K]) Hash() uint64 {
	var h uint64
	s.Each(func(k K) bool {
		h ^= s.t.hash(k)
		return true
	})
	return h
}
