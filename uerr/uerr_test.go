package uerr_test

import (
	"errors"
	"testing"

	"github.com/ivanobilenchi/gulib/uerr"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesKind(t *testing.T) {
	err := uerr.Wrap(uerr.Bounds, "decode varint at offset %d", 12)
	require.True(t, errors.Is(err, uerr.Bounds))
	require.False(t, errors.Is(err, uerr.Memory))
	require.Contains(t, err.Error(), "decode varint at offset 12")
}
