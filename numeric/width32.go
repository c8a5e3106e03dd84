//go:build gulib_width32 && !gulib_width16

package numeric

// Int and Uint are the library's main configurable-width integer aliases.
// This build selects the 32-bit width.
type Int = int32
type Uint = uint32

// Width is the selected main integer width, in bits.
const Width = 32
