package hashfunc_test

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/ivanobilenchi/gulib/hashfunc"
	"github.com/stretchr/testify/require"
)

func TestIntMixersAreDeterministic(t *testing.T) {
	require.Equal(t, hashfunc.HashInt64(42), hashfunc.HashInt64(42))
	require.NotEqual(t, hashfunc.HashInt64(42), hashfunc.HashInt64(43))
	require.Equal(t, uint64(42), hashfunc.HashInt32(42))
}

func TestHashAllocPtrDividesByAlignment(t *testing.T) {
	a := hashfunc.HashAllocPtr(16)
	b := hashfunc.HashAllocPtr(32)
	require.NotEqual(t, a, b)
	require.Equal(t, hashfunc.HashPtr(1), a)
}

func TestKR2AndDJB2MatchByteAndStringForms(t *testing.T) {
	s := "the quick brown fox"
	require.Equal(t, hashfunc.HashKR2([]byte(s)), hashfunc.HashKR2String(s))
	require.Equal(t, hashfunc.HashDJB2([]byte(s)), hashfunc.HashDJB2String(s))
	require.NotEqual(t, hashfunc.HashKR2String(s), hashfunc.HashDJB2String(s))
}

func TestDJB2SeedsAt5381(t *testing.T) {
	require.Equal(t, uint64(5381), hashfunc.HashDJB2(nil))
}

func TestXXHashMatchesLibrary(t *testing.T) {
	s := "gulib"
	require.Equal(t, xxhash.Sum64String(s), hashfunc.XXHash64String(s))
	require.Equal(t, xxhash.Sum64([]byte(s)), hashfunc.XXHash64([]byte(s)))
}

func TestCombineIsOrderSensitive(t *testing.T) {
	h1, h2 := uint64(111), uint64(222)
	require.NotEqual(t, hashfunc.Combine(h1, h2), hashfunc.Combine(h2, h1))
}
