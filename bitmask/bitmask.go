// Package bitmask implements single-bit, range, and population-count
// operations over 8/16/32/64-bit flag words.
package bitmask

import (
	"math/bits"
	"unsafe"
)

// Word is the constraint satisfied by every bitmask width the library
// supports.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bit returns a mask with only bit i set.
func Bit[T Word](i uint) T {
	return T(1) << i
}

// IsSet reports whether bit i of w is set.
func IsSet[T Word](w T, i uint) bool {
	return w&Bit[T](i) != 0
}

// Set returns w with bit i set.
func Set[T Word](w T, i uint) T {
	return w | Bit[T](i)
}

// Unset returns w with bit i cleared.
func Unset[T Word](w T, i uint) T {
	return w &^ Bit[T](i)
}

// Toggle returns w with bit i flipped.
func Toggle[T Word](w T, i uint) T {
	return w ^ Bit[T](i)
}

// Overwrite returns w with bit i set to value.
func Overwrite[T Word](w T, i uint, value bool) T {
	if value {
		return Set(w, i)
	}
	return Unset(w, i)
}

// Range returns a mask with bits [lo, hi) set.
func Range[T Word](lo, hi uint) T {
	if hi <= lo {
		return 0
	}
	width := uint(widthOf[T]())
	full := ^T(0)
	if hi >= width {
		return full &^ ((T(1) << lo) - 1)
	}
	return (full >> (width - hi)) &^ ((T(1) << lo) - 1)
}

// SetRange returns w with bits [lo, hi) set.
func SetRange[T Word](w T, lo, hi uint) T {
	return w | Range[T](lo, hi)
}

// UnsetRange returns w with bits [lo, hi) cleared.
func UnsetRange[T Word](w T, lo, hi uint) T {
	return w &^ Range[T](lo, hi)
}

// PopCount returns the number of set bits in w.
func PopCount[T Word](w T) int {
	return bits.OnesCount64(uint64(w))
}

// FirstSet returns the index of the lowest set bit in w, and false if w is
// zero.
func FirstSet[T Word](w T) (uint, bool) {
	if w == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros64(uint64(w))), true
}

func widthOf[T Word]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}
