package utime_test

import (
	"testing"

	"github.com/ivanobilenchi/gulib/utime"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonthAndLeapYear(t *testing.T) {
	expected := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for m := 1; m <= 12; m++ {
		require.Equal(t, expected[m-1], utime.DaysInMonth(1, m))
	}

	require.True(t, utime.IsLeapYear(16))
	require.True(t, utime.IsLeapYear(2000))
	require.False(t, utime.IsLeapYear(17))
	require.False(t, utime.IsLeapYear(1000))
	require.Equal(t, 29, utime.DaysInMonth(2000, 2))
}

// TestCivilTimestampRoundTrip mirrors the "civil <-> timestamp" testable
// property: for any representable civil time, converting to a timestamp
// and back yields the same value.
func TestCivilTimestampRoundTrip(t *testing.T) {
	cases := []utime.Civil{
		{Year: 2021, Month: 2, Day: 14, Hour: 1, Minute: 30, Second: 0},
		{Year: 1970, Month: 1, Day: 1, Hour: 0, Minute: 0, Second: 0},
		{Year: 1969, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59},
		{Year: 1900, Month: 3, Day: 1, Hour: 12, Minute: 0, Second: 0},
		{Year: 2400, Month: 2, Day: 29, Hour: 6, Minute: 7, Second: 8},
	}
	for _, c := range cases {
		got := utime.FromTimestamp(c.ToTimestamp())
		require.True(t, c.Equals(got), "round trip mismatch for %v: got %v", c, got)
	}
}

func TestCivilDiff(t *testing.T) {
	a := utime.Civil{Year: 2021, Month: 2, Day: 14, Hour: 1, Minute: 30, Second: 0}
	b := a
	b.Day++

	require.Equal(t, int64(-86400), utime.Diff(a, b, utime.Seconds))
	require.Equal(t, int64(-1440), utime.Diff(a, b, utime.Minutes))
	require.Equal(t, int64(-24), utime.Diff(a, b, utime.Hours))

	b.Year -= 2
	b.Month += 5

	require.Equal(t, int64(1), utime.Diff(a, b, utime.Years))
	require.Equal(t, int64(19), utime.Diff(a, b, utime.Months))
}

func TestCivilAddMonthsAndSeconds(t *testing.T) {
	a := utime.Civil{Year: 2021, Month: 2, Day: 14, Hour: 1, Minute: 30, Second: 0}
	b := a
	b.Day++
	b.Year -= 2
	b.Month += 5

	b = b.Add(19, utime.Months)
	a = a.Add(24*60*60, utime.Seconds)
	require.True(t, a.Equals(b), "expected %v == %v", a, b)
}

// TestNormalizeToUTCConcreteScenario checks that 2021-02-14 01:30:00 at
// offset -1h29m normalizes to 2021-02-14 02:59:00 UTC.
func TestNormalizeToUTCConcreteScenario(t *testing.T) {
	c := utime.Civil{Year: 2021, Month: 2, Day: 14, Hour: 1, Minute: 30, Second: 0}
	got := c.Normalize(-1, 29)
	require.Equal(t, "2021/02/14-02:59:00", got.String())
}

func TestParseCivilWithOffsetMatchesToString(t *testing.T) {
	c, err := utime.ParseCivil("1990-02-14T14:30:00-1:29")
	require.NoError(t, err)
	require.Equal(t, "1990/02/14-15:59:00", c.String())
}

func TestParseCivilWithZAndPlainOffset(t *testing.T) {
	c, err := utime.ParseCivil("2022-06-01T00:00:00Z")
	require.NoError(t, err)
	require.Equal(t, "2022/06/01-00:00:00", c.String())

	c2, err := utime.ParseCivil("2022-06-01T02:00:00+02:00")
	require.NoError(t, err)
	require.Equal(t, "2022/06/01-00:00:00", c2.String())
}

func TestParseCivilRejectsGarbage(t *testing.T) {
	_, err := utime.ParseCivil("abcd")
	require.Error(t, err)
}
