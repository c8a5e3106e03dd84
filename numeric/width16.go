//go:build gulib_width16

package numeric

// Int and Uint are the library's main configurable-width integer aliases.
// This build selects the 16-bit width.
type Int = int16
type Uint = uint16

// Width is the selected main integer width, in bits.
const Width = 16
