package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/pystylecheck/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies Ignore slice", func(t *testing.T) {
		original := &config.Config{
			Ignore: []string{"build/**", "*.pyi"},
			Jobs:   4,
			Strict: true,
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, original, clone)

		clone.Ignore[0] = "changed"
		assert.Equal(t, "build/**", original.Ignore[0])
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		data := []byte(`
ignore:
  - "build/**"
follow_symlinks: true
jobs: 3
format: json
color: never
strict: true
`)
		cfg, err := config.FromYAML(data)
		require.NoError(t, err)

		assert.Equal(t, []string{"build/**"}, cfg.Ignore)
		assert.True(t, cfg.FollowSymlinks)
		assert.Equal(t, 3, cfg.Jobs)
		assert.Equal(t, config.FormatJSON, cfg.Format)
		assert.Equal(t, config.ColorNever, cfg.Color)
		assert.True(t, cfg.Strict)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("  \n"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		_, err := config.FromYAML([]byte("line_length: 100\n"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.FromYAML([]byte("ignore: [unterminated\n"))
		require.Error(t, err)
	})
}
