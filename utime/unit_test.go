package utime_test

import (
	"testing"

	"github.com/ivanobilenchi/gulib/utime"
	"github.com/stretchr/testify/require"
)

func TestAutoUnitAndIntervalString(t *testing.T) {
	cases := []struct {
		ns   uint64
		unit utime.Unit
		str  string
	}{
		{999, utime.Nanoseconds, "999.00 ns"},
		{1000, utime.Microseconds, "1.00 us"},
		{999994, utime.Microseconds, "999.99 us"},
		{999995, utime.Milliseconds, "1.00 ms"},
		{999994999, utime.Milliseconds, "999.99 ms"},
		{999995000, utime.Seconds, "1.00 s"},
		{59994999999, utime.Seconds, "59.99 s"},
		{59995000000, utime.Minutes, "1.00 m"},
		{3599699999999, utime.Minutes, "59.99 m"},
		{3599700000000, utime.Hours, "1.00 h"},
		{86381999999999, utime.Hours, "23.99 h"},
		{86382000000000, utime.Days, "1.00 d"},
	}

	for _, c := range cases {
		require.Equal(t, c.unit, utime.AutoUnit(c.ns), "ns=%d", c.ns)
		require.Equal(t, c.str, utime.IntervalString(c.ns), "ns=%d", c.ns)
	}
}

func TestRawNanosStringAddsThousandsSeparators(t *testing.T) {
	require.Equal(t, "86,382,000,000,000 ns", utime.RawNanosString(86382000000000))
}
