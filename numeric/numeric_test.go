package numeric_test

import (
	"testing"

	"github.com/ivanobilenchi/gulib/numeric"
	"github.com/stretchr/testify/require"
)

func TestIsPow2(t *testing.T) {
	require.False(t, numeric.IsPow2(uint64(0)))
	require.True(t, numeric.IsPow2(uint64(1)))
	require.True(t, numeric.IsPow2(uint64(64)))
	require.False(t, numeric.IsPow2(uint64(63)))
}

func TestNextPow2(t *testing.T) {
	cases := map[uint32]uint32{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1023: 1024, 1024: 1024}
	for in, want := range cases {
		require.Equal(t, want, numeric.NextPow2(in), "NextPow2(%d)", in)
	}
}

func TestPrevPow2(t *testing.T) {
	cases := map[uint32]uint32{0: 0, 1: 1, 2: 2, 3: 2, 5: 4, 1023: 512, 1024: 1024}
	for in, want := range cases {
		require.Equal(t, want, numeric.PrevPow2(in), "PrevPow2(%d)", in)
	}
}

func TestLog2FloorCeil(t *testing.T) {
	require.Equal(t, uint(0), numeric.Log2Floor(uint32(1)))
	require.Equal(t, uint(3), numeric.Log2Floor(uint32(8)))
	require.Equal(t, uint(3), numeric.Log2Floor(uint32(15)))
	require.Equal(t, uint(0), numeric.Log2Ceil(uint32(1)))
	require.Equal(t, uint(3), numeric.Log2Ceil(uint32(8)))
	require.Equal(t, uint(4), numeric.Log2Ceil(uint32(9)))
}

func TestPopCount(t *testing.T) {
	require.Equal(t, 0, numeric.PopCount(uint64(0)))
	require.Equal(t, 1, numeric.PopCount(uint64(8)))
	require.Equal(t, 8, numeric.PopCount(uint64(0xFF)))
}

func TestWidthAlias(t *testing.T) {
	var v numeric.Uint = 42
	require.EqualValues(t, 42, v)
}
