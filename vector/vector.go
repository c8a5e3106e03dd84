// Package vector implements gulib's generic dynamic array: a sequence of T
// with random access, a small-size optimisation that keeps short sequences
// entirely inline (no heap allocation), a bespoke iterative quicksort, and
// a binary/linear hybrid sorted-insertion search. A min-heap view
// (HeapPush/HeapPop) is layered directly on top of the same storage.
//
// Go's type system cannot express "an array sized by sizeof(T)" the way
// the C implementation reinterprets its pointer-sized handle field as
// inline storage, so the inline buffer here is a fixed physical array of
// maxInlineSlots elements, with the *logical* inline capacity computed at
// instantiation time from sizeof(T) using the same
// floor(sizeof(pointer)/sizeof(T)) formula the C original uses. This
// trades a small, bounded amount of unused struct space for large T in
// exchange for preserving the same small-size-optimisation threshold;
// see DESIGN.md.
package vector

import (
	"unsafe"

	"github.com/google/uuid"
	"github.com/ivanobilenchi/gulib/numeric"
	"github.com/ivanobilenchi/gulib/uerr"
	"github.com/ivanobilenchi/gulib/uleak"
)

const (
	pointerSize    = int(unsafe.Sizeof(uintptr(0)))
	maxInlineSlots = 8
	cacheLineSize  = 64
	sortStackSize  = 64
)

// Vector is a generic dynamic array of T.
//
// The zero value is a valid, empty vector that performs no allocation.
type Vector[T any] struct {
	heap   []T
	inline [maxInlineSlots]T
	count  int
	handle uuid.UUID
}

// trackHeap registers the vector's current heap allocation with uleak, a
// no-op unless the binary was built with the gulib_leakcheck tag.
func (v *Vector[T]) trackHeap() {
	if v.handle == uuid.Nil {
		v.handle = uuid.New()
	}
	uleak.Track(v.handle)
}

func (v *Vector[T]) untrackHeap() {
	if v.handle != uuid.Nil {
		uleak.Untrack(v.handle)
		v.handle = uuid.Nil
	}
}

// New returns an empty vector. Equivalent to the zero value; provided for
// discoverability and call-site symmetry with hashtable.NewSet/NewMap.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// FromSlice returns a new vector containing a copy of items.
func FromSlice[T any](items []T) *Vector[T] {
	v := &Vector[T]{}
	_ = v.AppendSlice(items)
	return v
}

func inlineCap[T any]() int {
	var z T
	sz := int(unsafe.Sizeof(z))
	if sz == 0 {
		return maxInlineSlots
	}
	c := pointerSize / sz
	if c > maxInlineSlots {
		c = maxInlineSlots
	}
	return c
}

func cacheLineThreshold[T any]() int {
	var z T
	sz := int(unsafe.Sizeof(z))
	if sz == 0 {
		sz = 1
	}
	t := cacheLineSize / sz
	if t < 1 {
		t = 1
	}
	return t
}

func growCap(requested int) int {
	c := int(numeric.NextPow2(uint64(requested)))
	if c < 4 {
		c = 4
	}
	return c
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.count }

// IsEmpty reports whether the vector has no live elements.
func (v *Vector[T]) IsEmpty() bool { return v.count == 0 }

// Capacity returns the number of elements the vector can currently hold
// without growing.
func (v *Vector[T]) Capacity() int {
	if v.heap != nil {
		return cap(v.heap)
	}
	return inlineCap[T]()
}

// IsInline reports whether the vector is currently using inline storage
// (no heap allocation).
func (v *Vector[T]) IsInline() bool { return v.heap == nil }

func (v *Vector[T]) view() []T {
	if v.heap != nil {
		return v.heap[:v.count]
	}
	return v.inline[:v.count]
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T { return v.view()[i] }

// SetAt overwrites the element at index i.
func (v *Vector[T]) SetAt(i int, x T) { v.view()[i] = x }

// AsSlice returns a freshly allocated copy of the vector's live elements.
func (v *Vector[T]) AsSlice() []T {
	out := make([]T, v.count)
	copy(out, v.view())
	return out
}

// Deinit releases any heap storage and resets the vector to empty.
func (v *Vector[T]) Deinit() {
	v.untrackHeap()
	v.heap = nil
	v.count = 0
}

// Reserve grows the vector's capacity to at least n elements.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Capacity() {
		return nil
	}
	newCap := growCap(n)
	newHeap := make([]T, v.count, newCap)
	copy(newHeap, v.view())
	v.heap = newHeap
	v.trackHeap()
	return nil
}

// Shrink reduces capacity to the smallest power of two that fits the
// current element count, switching back to inline storage if the count
// fits inline.
func (v *Vector[T]) Shrink() error {
	ic := inlineCap[T]()
	if v.count <= ic {
		if v.heap != nil {
			copy(v.inline[:v.count], v.heap[:v.count])
			v.heap = nil
			v.untrackHeap()
		}
		return nil
	}
	newCap := int(numeric.NextPow2(uint64(v.count)))
	if v.heap != nil && cap(v.heap) == newCap {
		return nil
	}
	newHeap := make([]T, v.count, newCap)
	copy(newHeap, v.view())
	v.heap = newHeap
	v.trackHeap()
	return nil
}

// Push appends x.
func (v *Vector[T]) Push(x T) error {
	if v.count >= v.Capacity() {
		if err := v.Reserve(v.count + 1); err != nil {
			return err
		}
	}
	if v.heap != nil {
		v.heap = append(v.heap[:v.count], x)
	} else {
		v.inline[v.count] = x
	}
	v.count++
	return nil
}

// Pop removes and returns the last element.
func (v *Vector[T]) Pop() (T, bool) {
	if v.count == 0 {
		var zero T
		return zero, false
	}
	return v.RemoveAt(v.count - 1), true
}

// InsertAt shifts [i, count) right by one and places x at i.
func (v *Vector[T]) InsertAt(i int, x T) error {
	if i < 0 || i > v.count {
		return uerr.Wrap(uerr.Bounds, "insert_at: index %d out of range [0,%d]", i, v.count)
	}
	if v.count >= v.Capacity() {
		if err := v.Reserve(v.count + 1); err != nil {
			return err
		}
	}
	if v.heap != nil {
		v.heap = v.heap[:v.count+1]
		copy(v.heap[i+1:], v.heap[i:v.count])
		v.heap[i] = x
	} else {
		copy(v.inline[i+1:v.count+1], v.inline[i:v.count])
		v.inline[i] = x
	}
	v.count++
	return nil
}

// RemoveAt returns the element at i, shifting [i+1, count) left by one.
func (v *Vector[T]) RemoveAt(i int) T {
	s := v.view()
	x := s[i]
	copy(s[i:], s[i+1:])
	v.count--
	if v.heap != nil {
		v.heap = v.heap[:v.count]
	}
	return x
}

// SetRange overwrites (or extends) the vector starting at start with arr's
// contents. start must not be greater than the current length.
func (v *Vector[T]) SetRange(start int, arr []T) error {
	if start > v.count {
		return uerr.Wrap(uerr.Bounds, "set_range: start %d beyond size %d", start, v.count)
	}
	end := start + len(arr)
	if end > v.Capacity() {
		if err := v.Reserve(end); err != nil {
			return err
		}
	}
	if v.heap != nil {
		if end > len(v.heap) {
			v.heap = v.heap[:end]
		}
		copy(v.heap[start:end], arr)
	} else {
		copy(v.inline[start:end], arr)
	}
	if end > v.count {
		v.count = end
	}
	return nil
}

// AppendSlice appends every element of items.
func (v *Vector[T]) AppendSlice(items []T) error {
	return v.SetRange(v.count, items)
}

// AppendItems appends each of items, in order.
func (v *Vector[T]) AppendItems(items ...T) error {
	return v.AppendSlice(items)
}

// AppendVector appends a copy of other's live elements.
func (v *Vector[T]) AppendVector(other *Vector[T]) error {
	return v.AppendSlice(other.view())
}

// Reverse reverses the vector in place.
func (v *Vector[T]) Reverse() {
	s := v.view()
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Clone returns a deep (element-wise) copy of the vector.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{}
	_ = out.AppendSlice(v.view())
	return out
}

// CopyTo copies live elements into dst, returning the number copied.
func (v *Vector[T]) CopyTo(dst []T) int {
	return copy(dst, v.view())
}

// IndexOf returns the index of the first element equal to x under eq, and
// false if none is found.
func (v *Vector[T]) IndexOf(x T, eq func(a, b T) bool) (int, bool) {
	s := v.view()
	for i, e := range s {
		if eq(e, x) {
			return i, true
		}
	}
	return -1, false
}

// IndexOfReverse is IndexOf, scanning from the end.
func (v *Vector[T]) IndexOfReverse(x T, eq func(a, b T) bool) (int, bool) {
	s := v.view()
	for i := len(s) - 1; i >= 0; i-- {
		if eq(s[i], x) {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether x is present under eq.
func (v *Vector[T]) Contains(x T, eq func(a, b T) bool) bool {
	_, ok := v.IndexOf(x, eq)
	return ok
}

// Equals reports whether v and other have the same length and pairwise
// equal (under eq) elements, in order.
func (v *Vector[T]) Equals(other *Vector[T], eq func(a, b T) bool) bool {
	if v.count != other.count {
		return false
	}
	a, b := v.view(), other.view()
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// PushUnique appends x iff it is not already present under eq.
func (v *Vector[T]) PushUnique(x T, eq func(a, b T) bool) (inserted bool, err error) {
	if v.Contains(x, eq) {
		return false, nil
	}
	if err := v.Push(x); err != nil {
		return false, err
	}
	return true, nil
}

// IndexOfMin returns the index of the smallest element under less, or -1
// if the vector is empty.
func (v *Vector[T]) IndexOfMin(less func(a, b T) bool) int {
	s := v.view()
	if len(s) == 0 {
		return -1
	}
	min := 0
	for i := 1; i < len(s); i++ {
		if less(s[i], s[min]) {
			min = i
		}
	}
	return min
}

// IndexOfMax returns the index of the largest element under less, or -1 if
// the vector is empty.
func (v *Vector[T]) IndexOfMax(less func(a, b T) bool) int {
	s := v.view()
	if len(s) == 0 {
		return -1
	}
	max := 0
	for i := 1; i < len(s); i++ {
		if less(s[max], s[i]) {
			max = i
		}
	}
	return max
}

// sortSlice is an iterative quicksort with an explicit sortStackSize-slot
// stack and a linear-congruential pivot generator (seed = seed*69069+1,
// starting at 31). Equal elements are not guaranteed to keep their relative
// order. When a deeply skewed partition overflows the stack, the oldest
// pending partition is dropped from tracking and resumed directly; this is
// safe because every stacked bound is itself a valid partition boundary,
// never a partially-sorted one.
func sortSlice[T any](array []T, less func(a, b T) bool) {
	length := len(array)
	start := 0
	pos := 0
	seed := uint32(31)
	var stack [sortStackSize]int

	for {
		for ; start+1 < length; length++ {
			if pos == sortStackSize {
				pos = 0
				length = stack[0]
			}
			pivot := array[start+int(seed%uint32(length-start))]
			seed = seed*69069 + 1
			stack[pos] = length
			pos++

			right := start - 1
			for {
				right++
				for less(array[right], pivot) {
					right++
				}
				length--
				for less(pivot, array[length]) {
					length--
				}
				if right >= length {
					break
				}
				array[right], array[length] = array[length], array[right]
			}
		}
		if pos == 0 {
			break
		}
		start = length
		pos--
		length = stack[pos]
	}
}

// Sort sorts the vector in place under less.
func (v *Vector[T]) Sort(less func(a, b T) bool) {
	sortSlice(v.view(), less)
}

// SortRange sorts the length elements starting at start, in place.
func (v *Vector[T]) SortRange(start, length int, less func(a, b T) bool) {
	sortSlice(v.view()[start:start+length], less)
}

// insertionIndexSorted finds the leftmost index at which item can be
// inserted while keeping array sorted under less. It binary-searches down
// to a cache-line-sized window, then finishes with a linear scan: below
// that window a linear scan has fewer branch mispredictions than
// continuing to bisect.
func insertionIndexSorted[T any](array []T, item T, less func(a, b T) bool) int {
	l, r := 0, len(array)
	threshold := cacheLineThreshold[T]()
	for r-l > threshold {
		m := l + (r-l)/2
		if less(array[m], item) {
			l = m + 1
		} else {
			r = m
		}
	}
	for l < r && less(array[l], item) {
		l++
	}
	return l
}

// InsertionIndexSorted returns the leftmost index at which item can be
// inserted while keeping the vector sorted under less. The vector must
// already be sorted under less.
func (v *Vector[T]) InsertionIndexSorted(item T, less func(a, b T) bool) int {
	return insertionIndexSorted(v.view(), item, less)
}

// IndexOfSorted locates item in a vector sorted under less, using
// InsertionIndexSorted followed by an eq check at the landing index.
func (v *Vector[T]) IndexOfSorted(item T, less, eq func(a, b T) bool) (int, bool) {
	s := v.view()
	i := insertionIndexSorted(s, item, less)
	if i < len(s) && eq(s[i], item) {
		return i, true
	}
	return -1, false
}

// ContainsSorted reports whether item is present in a vector sorted under
// less.
func (v *Vector[T]) ContainsSorted(item T, less, eq func(a, b T) bool) bool {
	_, ok := v.IndexOfSorted(item, less, eq)
	return ok
}

// InsertSorted inserts item into a vector sorted under less, keeping it
// sorted, and returns the index it landed at.
func (v *Vector[T]) InsertSorted(item T, less func(a, b T) bool) (int, error) {
	i := v.InsertionIndexSorted(item, less)
	if err := v.InsertAt(i, item); err != nil {
		return 0, err
	}
	return i, nil
}

// InsertSortedUnique is InsertSorted, but skips the insertion if an equal
// (under eq) element is already present at the landing index.
func (v *Vector[T]) InsertSortedUnique(item T, less, eq func(a, b T) bool) (idx int, inserted bool, err error) {
	i := v.InsertionIndexSorted(item, less)
	if i < v.count && eq(v.view()[i], item) {
		return i, false, nil
	}
	if err := v.InsertAt(i, item); err != nil {
		return 0, false, err
	}
	return i, true, nil
}

// RemoveSorted removes the first element equal to item (under eq) from a
// vector sorted under less.
func (v *Vector[T]) RemoveSorted(item T, less, eq func(a, b T) bool) (T, bool) {
	i, ok := v.IndexOfSorted(item, less, eq)
	if !ok {
		var zero T
		return zero, false
	}
	return v.RemoveAt(i), true
}

// HeapPush pushes item onto the vector treated as a binary min-heap under
// less.
func (v *Vector[T]) HeapPush(item T, less func(a, b T) bool) error {
	if err := v.Push(item); err != nil {
		return err
	}
	s := v.view()
	i := v.count - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !less(s[i], s[parent]) {
			break
		}
		s[i], s[parent] = s[parent], s[i]
		i = parent
	}
	return nil
}

// HeapPop pops the smallest element (under less) from the vector treated
// as a binary min-heap.
func (v *Vector[T]) HeapPop(less func(a, b T) bool) (T, bool) {
	if v.count == 0 {
		var zero T
		return zero, false
	}
	s := v.view()
	root := s[0]
	last := v.count - 1
	s[0] = s[last]
	v.RemoveAt(last)

	s = v.view()
	i := 0
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < len(s) && less(s[l], s[smallest]) {
			smallest = l
		}
		if r < len(s) && less(s[r], s[smallest]) {
			smallest = r
		}
		if smallest == i {
			break
		}
		s[i], s[smallest] = s[smallest], s[i]
		i = smallest
	}
	return root, true
}
