package hashtable

import (
	"iter"

	"github.com/ivanobilenchi/gulib/hashfunc"
)

// Map is a generic open-addressing hash map. The zero value is ready to
// use once its Hash/Equal pair is supplied via NewMap or one of the
// typed constructors; a Map built any other way will panic on first use.
type Map[K comparable, V any] struct {
	t Table[K, V]
}

// NewMap creates an empty map using the given hash and equality
// functions for K.
func NewMap[K comparable, V any](hash HashFunc[K], equal EqualFunc[K]) *Map[K, V] {
	return &Map[K, V]{t: Table[K, V]{isMap: true, hash: hash, equal: equal}}
}

// NewStringMap creates an empty map keyed by strings, hashed with
// xxHash64.
func NewStringMap[V any]() *Map[string, V] {
	return NewMap[string, V](hashfunc.XXHash64String, func(a, b string) bool { return a == b })
}

// NewInt64Map creates an empty map keyed by int64s.
func NewInt64Map[V any]() *Map[int64, V] {
	return NewMap[int64, V](
		func(k int64) uint64 { return hashfunc.HashInt64(uint64(k)) },
		func(a, b int64) bool { return a == b },
	)
}

// NewUint64Map creates an empty map keyed by uint64s.
func NewUint64Map[V any]() *Map[uint64, V] {
	return NewMap[uint64, V](hashfunc.HashInt64, func(a, b uint64) bool { return a == b })
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.t.Len() == 0 }

// Get returns the value stored for key, reporting whether it was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i, ok := m.t.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.t.vals[i], true
}

// GetOr returns the value stored for key, or fallback if key isn't
// present.
func (m *Map[K, V]) GetOr(key K, fallback V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return fallback
}

// Has reports whether key is present in the map.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.t.find(key)
	return ok
}

// Set stores value for key, returning the value it replaced (if any) and
// whether an existing entry was replaced.
func (m *Map[K, V]) Set(key K, value V) (V, bool) {
	i, inserted := m.t.put(key)
	if inserted {
		m.t.vals[i] = value
		var zero V
		return zero, false
	}
	old := m.t.vals[i]
	m.t.vals[i] = value
	return old, true
}

// Add stores value for key only if key is not already present, reporting
// the pre-existing value (if any) and whether the map already held key.
func (m *Map[K, V]) Add(key K, value V) (V, bool) {
	i, inserted := m.t.put(key)
	if inserted {
		m.t.vals[i] = value
		var zero V
		return zero, false
	}
	return m.t.vals[i], true
}

// Replace overwrites the value for key only if key is already present,
// reporting the value it replaced and whether the replacement happened.
func (m *Map[K, V]) Replace(key K, value V) (V, bool) {
	i, ok := m.t.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	old := m.t.vals[i]
	m.t.vals[i] = value
	return old, true
}

// Remove deletes key from the map, reporting its value (if any) and
// whether it was present.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	i, ok := m.t.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	v := m.t.vals[i]
	m.t.deleteAt(i)
	return v, true
}

// SetCollector attaches a metrics collector to the map's underlying table.
func (m *Map[K, V]) SetCollector(c Collector) { m.t.SetCollector(c) }

// Clear empties the map without releasing its bucket storage.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// Deinit releases the map's bucket storage and resets it to empty.
func (m *Map[K, V]) Deinit() { m.t.Deinit() }

// Shrink compacts the map's bucket count down to its current load.
func (m *Map[K, V]) Shrink() { m.t.Shrink() }

// Clone returns an independent copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: m.t.clone()}
}

// Each calls fn for every entry, stopping early if fn returns false.
func (m *Map[K, V]) Each(fn func(k K, v V) bool) {
	m.t.each(func(_ int, k K, v V) bool { return fn(k, v) })
}

// All returns a range-over-func iterator over the map's entries, letting
// callers write `for k, v := range m.All() { ... }`.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Each(yield)
	}
}

// Keys returns the map's keys as a slice, in unspecified order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.Len())
	m.Each(func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Values returns the map's values as a slice, in the same order Keys
// would return their corresponding keys.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.Len())
	m.Each(func(_ K, v V) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Keyset returns a Set containing the map's keys.
func (m *Map[K, V]) Keyset() *Set[K] {
	s := NewSet[K](m.t.hash, m.t.equal)
	m.Each(func(k K, _ V) bool {
		s.Insert(k)
		return true
	})
	return s
}
