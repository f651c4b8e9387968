package guard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	v := ValueOf(42)

	require.True(t, v.Ok())
	got, ok := v.Get()
	require.True(t, ok)
	require.Equal(t, 42, got)
	require.Equal(t, 42, v.Or(7))
	require.Equal(t, 42, v.MustGet())
}

func TestNoValue(t *testing.T) {
	v := NoValue[int]()

	require.False(t, v.Ok())
	got, ok := v.Get()
	require.False(t, ok)
	require.Zero(t, got)
	require.Equal(t, 7, v.Or(7))
}

func TestValue_ZeroValueIsAbsent(t *testing.T) {
	var v Value[string]

	require.False(t, v.Ok())
}

func TestValue_PresentZeroDistinguishable(t *testing.T) {
	present := ValueOf[*int](nil)
	absent := NoValue[*int]()

	require.True(t, present.Ok())
	require.False(t, absent.Ok())
	require.Nil(t, present.MustGet())
}

func TestValue_MustGetPanics(t *testing.T) {
	require.Panics(t, func() {
		NoValue[int]().MustGet()
	})
}
