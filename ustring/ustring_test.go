package ustring_test

import (
	"strings"
	"testing"

	"github.com/ivanobilenchi/gulib/ustring"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmptyNotNull(t *testing.T) {
	var s ustring.String
	require.True(t, s.IsEmpty())
	require.False(t, s.IsNull())
	require.Equal(t, 0, s.Length())
}

func TestNull(t *testing.T) {
	require.True(t, ustring.Null.IsNull())
	require.True(t, ustring.Null.IsEmpty())
}

func TestCopyNineBytesRoundTrips(t *testing.T) {
	// ustring_copy("123456789", 9) walkthrough: nine bytes fits inline.
	s := ustring.Copy([]byte("123456789"))
	require.Equal(t, 9, s.Length())
	require.Equal(t, "123456789", s.Data())
	require.False(t, s.IsEmpty())
}

func TestCopyIsolatesFromSourceBuffer(t *testing.T) {
	buf := []byte("hello")
	s := ustring.Copy(buf)
	buf[0] = 'H'
	require.Equal(t, "hello", s.Data())
}

func TestLongStringSpillsToHeap(t *testing.T) {
	long := strings.Repeat("x", 200)
	s := ustring.FromString(long)
	require.Equal(t, 200, s.Length())
	require.Equal(t, long, s.Data())
}

func TestWrapAliasesBuffer(t *testing.T) {
	buf := []byte(strings.Repeat("y", 100))
	s := ustring.Wrap(buf)
	require.Equal(t, string(buf), s.Data())
}

func TestEqualsAcrossRepresentations(t *testing.T) {
	short := ustring.FromString("short")
	long := ustring.FromString(strings.Repeat("z", 100))
	require.True(t, short.Equals(ustring.FromString("short")))
	require.True(t, long.Equals(ustring.FromString(strings.Repeat("z", 100))))
	require.False(t, short.Equals(long))
}

func TestCompareAndPrecedes(t *testing.T) {
	a := ustring.FromString("apple")
	b := ustring.FromString("banana")
	require.True(t, a.Precedes(b))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 0, a.Compare(a))
	require.Equal(t, 1, b.Compare(a))
}

func TestIndexOfAndFind(t *testing.T) {
	s := ustring.FromString("hello world")
	require.Equal(t, 4, s.IndexOf('o'))
	require.Equal(t, 7, s.IndexOfLast('o'))
	require.Equal(t, 6, s.Find(ustring.FromString("world")))
	require.Equal(t, s.Length(), s.Find(ustring.FromString("missing")))
}

func TestStartsEndsWith(t *testing.T) {
	s := ustring.FromString("hello world")
	require.True(t, s.StartsWith(ustring.FromString("hello")))
	require.True(t, s.EndsWith(ustring.FromString("world")))
	require.False(t, s.StartsWith(ustring.FromString("world")))
}

func TestUpperLower(t *testing.T) {
	s := ustring.FromString("Hello")
	require.False(t, s.IsUpper())
	require.False(t, s.IsLower())
	require.Equal(t, "HELLO", s.ToUpper().Data())
	require.Equal(t, "hello", s.ToLower().Data())
	require.True(t, ustring.FromString("HELLO").IsUpper())
	require.True(t, ustring.FromString("hello").IsLower())
}

func TestConcatJoinRepeating(t *testing.T) {
	a := ustring.FromString("foo")
	b := ustring.FromString("bar")
	require.Equal(t, "foobar", ustring.Concat(a, b).Data())
	require.Equal(t, "foo,bar", ustring.Join(ustring.FromString(","), a, b).Data())
	require.Equal(t, "foofoofoo", ustring.Repeating(a, 3).Data())
	require.True(t, ustring.Repeating(a, 0).IsEmpty())
}

func TestWithFormat(t *testing.T) {
	s := ustring.WithFormat("%s-%d", "gulib", 42)
	require.Equal(t, "gulib-42", s.Data())
}

func TestHashIsStableAndWindowedForLongStrings(t *testing.T) {
	short := ustring.FromString("hello")
	require.Equal(t, short.Hash(), ustring.FromString("hello").Hash())
	require.NotEqual(t, short.Hash(), ustring.FromString("hellp").Hash())

	long := ustring.FromString(strings.Repeat("a", 500))
	require.Equal(t, long.Hash(), ustring.FromString(strings.Repeat("a", 500)).Hash())

	// Two long strings differing only in the middle (outside the windows)
	// must still collide, since the windowed hash never reads that byte.
	middled := []byte(strings.Repeat("a", 500))
	middled[100] = 'b'
	require.Equal(t, long.Hash(), ustring.Copy(middled).Hash())
}

func TestToIntToUintToFloat(t *testing.T) {
	i, err := ustring.FromString("-42").ToInt(10)
	require.NoError(t, err)
	require.Equal(t, int64(-42), i)

	u, err := ustring.FromString("42").ToUint(10)
	require.NoError(t, err)
	require.Equal(t, uint64(42), u)

	f, err := ustring.FromString("3.14").ToFloat()
	require.NoError(t, err)
	require.InDelta(t, 3.14, f, 1e-9)

	_, err = ustring.FromString("not a number").ToInt(10)
	require.Error(t, err)
}

func TestDupIsIndependentValue(t *testing.T) {
	s := ustring.FromString("hello")
	d := s.Dup()
	require.True(t, s.Equals(d))
}

func TestReleaseIsSafeOnInlineAndIdempotentOnHeap(t *testing.T) {
	inline := ustring.FromString("short")
	inline.Release()
	require.Equal(t, "short", inline.Data())

	heap := ustring.FromString(strings.Repeat("z", 100))
	heap.Release()
	heap.Release()
	require.Equal(t, strings.Repeat("z", 100), heap.Data())
}
