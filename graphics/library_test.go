package graphics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLibrary(t *testing.T) {
	// Given: a library with two animations
	blue := testAnimation(t, 16, 0.1)
	red := testAnimation(t, 16, 0.1)
	l := NewLibrary(map[string]*Animation{BluePlanet: blue, RedPlanet: red})

	t.Run("Get", func(t *testing.T) {
		a, err := l.Get(BluePlanet)
		require.NoError(t, err)
		require.Same(t, blue, a)
		require.Same(t, red, l.MustGet(RedPlanet))
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := l.Get(Lightning)
		require.ErrorIs(t, err, ErrUnknownAnimation)
		require.ErrorIs(t, l.Require(BluePlanet, Messages), ErrUnknownAnimation)
		require.NoError(t, l.Require(BluePlanet, RedPlanet))
		require.Panics(t, func() { l.MustGet(AddButton) })
	})

	t.Run("Dispose", func(t *testing.T) {
		l.Dispose()

		_, err := l.Get(BluePlanet)
		require.ErrorIs(t, err, ErrUnknownAnimation)
	})
}
