package ansicolor_test

import (
	"testing"

	"github.com/ivanobilenchi/gulib/ansicolor"
	"github.com/stretchr/testify/require"
)

func TestSprintRespectsEnabled(t *testing.T) {
	prev := ansicolor.Enabled()
	t.Cleanup(func() { ansicolor.SetEnabled(prev) })

	ansicolor.SetEnabled(false)
	require.Equal(t, "hello", ansicolor.Sprint(ansicolor.Error, "hello"))

	ansicolor.SetEnabled(true)
	require.Contains(t, ansicolor.Sprint(ansicolor.Error, "hello"), "hello")
}

func TestSetEnabledTogglesEnabled(t *testing.T) {
	prev := ansicolor.Enabled()
	t.Cleanup(func() { ansicolor.SetEnabled(prev) })

	ansicolor.SetEnabled(true)
	require.True(t, ansicolor.Enabled())
	ansicolor.SetEnabled(false)
	require.False(t, ansicolor.Enabled())
}
