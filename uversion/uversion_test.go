package uversion_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ivanobilenchi/gulib/uversion"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b uversion.Version
		want int
	}{
		{uversion.New(0, 0, 1), uversion.New(0, 0, 0), 1},
		{uversion.New(0, 0, 2), uversion.New(0, 0, 2), 0},
		{uversion.New(0, 0, 1), uversion.New(0, 0, 2), -1},
		{uversion.New(0, 1, 0), uversion.New(0, 0, 2), 1},
		{uversion.New(0, 2, 0), uversion.New(0, 2, 0), 0},
		{uversion.New(1, 0, 0), uversion.New(0, 2, 0), 1},
		{uversion.New(2, 0, 0), uversion.New(2, 0, 0), 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.a.Compare(c.b), "%s vs %s", c.a, c.b)
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "2.0.0", uversion.New(2, 0, 0).String())
}

func TestCollectPopulatesSessionAndRuntime(t *testing.T) {
	info := uversion.Collect()
	require.NotEmpty(t, info.SessionID)
	require.NotEmpty(t, info.GoVersion)
	require.Greater(t, info.NumCPU, 0)
}

func TestFprintIncludesVersionAndSession(t *testing.T) {
	info := uversion.Collect()
	var buf bytes.Buffer
	info.Fprint(&buf)
	require.Contains(t, buf.String(), info.Library.String())
	require.Contains(t, buf.String(), info.SessionID)
}

func TestJSONRoundTrips(t *testing.T) {
	info := uversion.Collect()
	raw, err := info.JSON()
	require.NoError(t, err)

	var decoded uversion.BuildInfo
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, info.SessionID, decoded.SessionID)
}
