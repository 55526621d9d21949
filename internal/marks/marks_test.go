package marks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	r := NewRegistry()

	r.Set('a', 450)
	pos, ok := r.Get('a')
	require.True(t, ok)
	require.Equal(t, 450.0, pos)
}

func TestGetMissingKey(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get('x')
	require.False(t, ok, "An unset mark is not an error, just absent")
}

func TestSetOverwrites(t *testing.T) {
	r := NewRegistry()

	r.Set('a', 100)
	r.Set('a', 700)

	pos, _ := r.Get('a')
	require.Equal(t, 700.0, pos)
	require.Equal(t, 1, r.Len())
}

func TestSetFloorsNegativePositions(t *testing.T) {
	r := NewRegistry()

	r.Set('a', -50)
	pos, _ := r.Get('a')
	require.Equal(t, 0.0, pos)
}

func TestClear(t *testing.T) {
	r := NewRegistry()
	r.Set('a', 1)
	r.Set('b', 2)

	r.Clear()
	require.Equal(t, 0, r.Len())
	_, ok := r.Get('a')
	require.False(t, ok)
}

func TestKeysSorted(t *testing.T) {
	r := NewRegistry()
	r.Set('z', 1)
	r.Set('a', 2)
	r.Set('1', 3)

	require.Equal(t, []rune{'1', 'a', 'z'}, r.Keys())
}
