package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/planets/graphics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		c, err := Load(path)

		// Then: everything else falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", c.LogLevel)
		assert.Equal(t, 640, c.Window.Width)
		assert.Equal(t, 480, c.Window.Height)
		assert.Equal(t, 60, c.Window.TPS)
		assert.Equal(t, "data", c.Assets.Root)
		assert.InDelta(t, 0.6, c.Game.DropSeconds, 1e-9)
		assert.Empty(t, c.Spectator.Addr)
		assert.Equal(t, DefaultAnimations(), c.Animations)
	})

	t.Run("Override one animation", func(t *testing.T) {
		path := writeConfig(t, `
animations:
  messages:
    texture: textures/other_messages.png
    frame-width: 128
    frame-height: 16
    frames: 3
    period: 1
`)

		c, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "textures/other_messages.png", c.Animations[graphics.Messages].Texture)
		assert.Equal(t, DefaultAnimations()[graphics.BluePlanet], c.Animations[graphics.BluePlanet])

		def := c.Defs()[graphics.Messages]
		assert.Equal(t, graphics.Def{Texture: "textures/other_messages.png", FrameWidth: 128, FrameHeight: 16, Frames: 3, Period: 1}, def)
	})

	t.Run("Environment wins", func(t *testing.T) {
		t.Setenv("CF_SPECTATOR_ADDR", ":9999")
		path := writeConfig(t, "spectator:\n  addr: \":8080\"\n")

		c, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, ":9999", c.Spectator.Addr)
	})

	t.Run("Invalid", func(t *testing.T) {
		path := writeConfig(t, "game:\n  drop-seconds: -1\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		require.Error(t, err)
		require.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "nope.yml")) })
	})
}
