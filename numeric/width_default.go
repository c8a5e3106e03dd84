//go:build !gulib_width16 && !gulib_width32

package numeric

// Int and Uint are the library's main configurable-width integer aliases.
// This build selects the 64-bit width (the default).
type Int = int64
type Uint = uint64

// Width is the selected main integer width, in bits.
const Width = 64
