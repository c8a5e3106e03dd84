// Package hashtable implements gulib's generic open-addressing hash
// table: Fibonacci-hashed home buckets, linear probing, backward-shift
// deletion (no tombstones), and power-of-two resizing at a 0.75 load
// factor. Set[K] and Map[K, V] are two thin views over the same Table
// engine, a set being a map with unit values.
package hashtable

import (
	"github.com/google/uuid"
	"github.com/ivanobilenchi/gulib/numeric"
	"github.com/ivanobilenchi/gulib/uleak"
)

// HashFunc computes a key's hash.
type HashFunc[K any] func(K) uint64

// EqualFunc reports whether two keys are equal.
type EqualFunc[K any] func(a, b K) bool

// fibMagic64 is 2^64/golden ratio, the multiplicative constant Fibonacci
// hashing uses to spread a hash's low bits into its high bits before
// taking the top `bits` of them as a home bucket.
const fibMagic64 = 0x9e3779b97f4a7c15

func fib(hash uint64, bits uint8) int {
	return int(hash * fibMagic64 >> (64 - bits))
}

func flagWordsForExp(exp uint8) int {
	if exp <= 5 {
		return 1
	}
	return 1 << (exp - 5)
}

func isUsed(flags []uint32, i int) bool { return flags[i>>5]&(1<<uint(i&0x1f)) != 0 }
func setUsed(flags []uint32, i int)     { flags[i>>5] |= 1 << uint(i&0x1f) }
func setEmpty(flags []uint32, i int)    { flags[i>>5] &^= (1 << uint(i&0x1f)) }

// upperBound returns the largest element count a table of the given
// bucket count may hold before it must grow: 0.75 * buckets.
func upperBound(buckets int) int { return (buckets >> 1) + (buckets >> 2) }

// Collector receives counts of hash table operations. metrics.Collector
// implements this interface; it is purely additive instrumentation that
// the engine never reads back.
type Collector interface {
	IncPut()
	IncGet()
	IncResize()
}

// Table is the shared open-addressing engine behind Set[K] and
// Map[K, V]. A Table built by NewSet/NewMap (which supply its hash and
// equality functions) starts empty and performs no allocation until the
// first insertion. The zero value has no hash function and panics on its
// first insertion.
type Table[K comparable, V any] struct {
	keys      []K
	vals      []V
	flags     []uint32
	exp       uint8
	count     int
	isMap     bool
	hash      HashFunc[K]
	equal     EqualFunc[K]
	collector Collector
	handle    uuid.UUID
}

// SetCollector attaches a metrics collector that every subsequent
// Put/Get/Resize call reports to.
func (t *Table[K, V]) SetCollector(c Collector) { t.collector = c }

func (t *Table[K, V]) sizeGt0() int {
	if t.exp == 0 {
		return 0
	}
	return 1 << t.exp
}

// Len returns the number of live entries.
func (t *Table[K, V]) Len() int { return t.count }

func (t *Table[K, V]) rehash(newExp uint8) {
	newSize := 1 << newExp
	newFlags := make([]uint32, flagWordsForExp(newExp))
	newKeys := make([]K, newSize)
	var newVals []V
	if t.isMap {
		newVals = make([]V, newSize)
	}
	mask := newSize - 1
	curSize := t.sizeGt0()

	for j := 0; j < curSize; j++ {
		if !isUsed(t.flags, j) {
			continue
		}
		i := fib(t.hash(t.keys[j]), newExp)
		for isUsed(newFlags, i) {
			i = (i + 1) & mask
		}
		setUsed(newFlags, i)
		newKeys[i] = t.keys[j]
		if t.isMap {
			newVals[i] = t.vals[j]
		}
	}

	t.flags = newFlags
	t.keys = newKeys
	t.vals = newVals

	if t.handle == uuid.Nil {
		t.handle = uuid.New()
	}
	uleak.Track(t.handle)
}

// resize rebuilds the table with newSize buckets, rounded up to a power of
// two (minimum 4), rehashing every live entry. It does nothing when that
// is the current bucket count, or when the current count would already
// reach the new size's load-factor bound. Unlike
// the C original's in-place kick-out rehash, this always rehashes into a
// freshly allocated triple of slices: both are O(current size), and the
// externally observable placement (home bucket, probe order, final
// occupancy) is identical either way.
func (t *Table[K, V]) resize(newSize int) {
	if newSize < 4 {
		newSize = 4
	}
	newExp := uint8(numeric.Log2Ceil(uint64(newSize)))
	actualSize := 1 << newExp
	if t.exp == newExp || t.count >= upperBound(actualSize) {
		return
	}
	t.rehash(newExp)
	t.exp = newExp
	if t.collector != nil {
		t.collector.IncResize()
	}
}

// Shrink compacts the table's bucket count down to the smallest size that
// still respects the load factor for the current element count.
func (t *Table[K, V]) Shrink() {
	size := 4
	for upperBound(size) <= t.count {
		size <<= 1
	}
	t.resize(size)
}

// Clear empties the table without releasing its bucket storage.
func (t *Table[K, V]) Clear() {
	if t.count == 0 {
		return
	}
	for i := range t.flags {
		t.flags[i] = 0
	}
	t.count = 0
}

// Deinit releases the table's bucket storage and resets it to empty.
func (t *Table[K, V]) Deinit() {
	t.flags = nil
	t.keys = nil
	t.vals = nil
	t.exp = 0
	t.count = 0
	if t.handle != uuid.Nil {
		uleak.Untrack(t.handle)
		t.handle = uuid.Nil
	}
}

func (t *Table[K, V]) find(key K) (int, bool) {
	if t.collector != nil {
		t.collector.IncGet()
	}
	if t.exp == 0 {
		return 0, false
	}
	mask := t.sizeGt0() - 1
	i := fib(t.hash(key), t.exp)
	for isUsed(t.flags, i) {
		if t.equal(t.keys[i], key) {
			return i, true
		}
		i = (i + 1) & mask
	}
	return 0, false
}

// put locates key's slot, growing the table first if necessary, and
// returns its index along with whether a new entry was created.
func (t *Table[K, V]) put(key K) (idx int, inserted bool) {
	if t.collector != nil {
		t.collector.IncPut()
	}
	size := t.sizeGt0()
	if t.count >= upperBound(size) {
		t.resize(size + 1)
		size = t.sizeGt0()
	}
	mask := size - 1
	i := fib(t.hash(key), t.exp)
	for isUsed(t.flags, i) {
		if t.equal(t.keys[i], key) {
			return i, false
		}
		i = (i + 1) & mask
	}
	t.keys[i] = key
	t.count++
	setUsed(t.flags, i)
	return i, true
}

// deleteAt removes the entry at index i, shifting later entries in its
// probe chain backward so the chain stays contiguous without tombstones.
func (t *Table[K, V]) deleteAt(i int) {
	if t.exp == 0 || !isUsed(t.flags, i) {
		return
	}
	mask := t.sizeGt0() - 1
	j := i
	for {
		j = (j + 1) & mask
		if i == j || !isUsed(t.flags, j) {
			break
		}
		k := fib(t.hash(t.keys[j]), t.exp)
		if (j > i && (k <= i || k > j)) || (j < i && (k <= i && k > j)) {
			t.keys[i] = t.keys[j]
			if t.isMap {
				t.vals[i] = t.vals[j]
			}
			i = j
		}
	}
	setEmpty(t.flags, i)
	t.count--
}

// clone returns an independent copy of t with the same key/value
// contents and bucket layout.
func (t *Table[K, V]) clone() Table[K, V] {
	out := Table[K, V]{
		exp:   t.exp,
		count: t.count,
		isMap: t.isMap,
		hash:  t.hash,
		equal: t.equal,
	}
	if t.exp > 0 {
		out.flags = append([]uint32(nil), t.flags...)
		out.keys = append([]K(nil), t.keys...)
		if t.isMap {
			out.vals = append([]V(nil), t.vals...)
		}
	}
	return out
}

// each calls fn for every live key/value pair, stopping early if fn
// returns false.
func (t *Table[K, V]) each(fn func(i int, k K, v V) bool) {
	size := t.sizeGt0()
	for i := 0; i < size; i++ {
		if !isUsed(t.flags, i) {
			continue
		}
		var v V
		if t.isMap {
			v = t.vals[i]
		}
		if !fn(i, t.keys[i], v) {
			return
		}
	}
}
