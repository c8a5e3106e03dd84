package urand_test

import (
	"testing"

	"github.com/ivanobilenchi/gulib/urand"
	"github.com/stretchr/testify/require"
)

func TestSetSeedIsReproducible(t *testing.T) {
	urand.SetSeed(42)
	a := urand.String(16, "")
	urand.SetSeed(42)
	b := urand.String(16, "")
	require.Equal(t, a, b)
}

func TestRangeStaysWithinBounds(t *testing.T) {
	urand.SetSeed(1)
	for i := 0; i < 1000; i++ {
		v := urand.Range(10, 5)
		require.GreaterOrEqual(t, v, int64(10))
		require.Less(t, v, int64(15))
	}
}

func TestRangeWithZeroLengthReturnsStart(t *testing.T) {
	require.Equal(t, int64(7), urand.Range(7, 0))
}

func TestStringUsesDefaultCharsetWhenEmpty(t *testing.T) {
	urand.SetSeed(3)
	s := urand.String(64, "")
	for _, c := range s {
		require.Contains(t, urand.DefaultCharset, string(c))
	}
}

func TestStringUsesProvidedCharset(t *testing.T) {
	urand.SetSeed(9)
	s := urand.String(32, "ab")
	for _, c := range s {
		require.Contains(t, "ab", string(c))
	}
}

func TestStringWithZeroLengthReturnsEmpty(t *testing.T) {
	require.Equal(t, "", urand.String(0, "xyz"))
}
