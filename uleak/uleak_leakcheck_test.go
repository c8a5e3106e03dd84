//go:build gulib_leakcheck

package uleak_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ivanobilenchi/gulib/uleak"
	"github.com/stretchr/testify/require"
)

func TestTrackUntrackBalances(t *testing.T) {
	uleak.Start()
	h := uuid.New()
	uleak.Track(h)
	uleak.Untrack(h)
	require.Empty(t, uleak.Report())
}

func TestReportSurfacesOutstandingAllocations(t *testing.T) {
	uleak.Start()
	h := uuid.New()
	uleak.Track(h)

	leaks := uleak.Report()
	require.Len(t, leaks, 1)
	require.Equal(t, h, leaks[0].Handle)
	require.Contains(t, leaks[0].Location, "uleak_leakcheck_test.go")
}

func TestEnabledIsTrue(t *testing.T) {
	require.True(t, uleak.Enabled())
}
