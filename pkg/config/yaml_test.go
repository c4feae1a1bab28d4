package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdparse/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies rule maps", func(t *testing.T) {
		original := &config.Config{
			Blocks:  map[string]string{"table": "ignore"},
			Inlines: map[string]string{"emphasis": "skip"},
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original.Blocks, clone.Blocks)

		clone.Blocks["table"] = "parse"
		clone.Inlines["image"] = "ignore"
		assert.Equal(t, "ignore", original.Blocks["table"])
		assert.NotContains(t, original.Inlines, "image")
	})

	t.Run("deep copies Ignore slice", func(t *testing.T) {
		original := &config.Config{Ignore: []string{"*.md", "vendor/**"}}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original.Ignore, clone.Ignore)

		clone.Ignore[0] = "changed"
		assert.Equal(t, "*.md", original.Ignore[0])
	})

	t.Run("preserves CLI fields", func(t *testing.T) {
		original := config.NewConfig()
		original.Jobs = 4
		original.Format = config.FormatYAML
		original.HeadingIDs = true
		original.Backups.Enabled = true

		clone := original.Clone()
		assert.Equal(t, original, clone)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		cfg := &config.Config{
			Width:        72,
			AnchorPrefix: "doc-",
			Blocks:       map[string]string{"html-block": "skip"},
			Jobs:         8,
		}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		out := string(data)
		assert.Contains(t, out, "width: 72")
		assert.Contains(t, out, "anchor_prefix: doc-")
		assert.Contains(t, out, "blocks:\n  html-block: skip")
		assert.NotContains(t, out, "jobs")
	})

	t.Run("header is prepended", func(t *testing.T) {
		cfg := &config.Config{Width: 60}
		data, err := cfg.ToYAMLWithHeader("# gomdparse configuration")
		require.NoError(t, err)
		assert.Contains(t, string(data), "# gomdparse configuration\n\nwidth: 60")
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		data := []byte(`
width: 100
heading_ids: true
detect_language: true
blocks:
  table: ignore
inlines:
  image: skip
ignore:
  - "vendor/**"
backups:
  enabled: true
`)
		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Width)
		assert.True(t, cfg.HeadingIDs)
		assert.True(t, cfg.DetectLanguage)
		assert.Equal(t, map[string]string{"table": "ignore"}, cfg.Blocks)
		assert.Equal(t, map[string]string{"image": "skip"}, cfg.Inlines)
		assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)
		assert.True(t, cfg.Backups.Enabled)
	})

	t.Run("initializes empty rule maps", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`width: 40`))
		require.NoError(t, err)
		assert.NotNil(t, cfg.Blocks)
		assert.NotNil(t, cfg.Inlines)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := config.FromYAML(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Width)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := config.FromYAML([]byte(`flavor: gfm`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})

	t.Run("round trip", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.AnchorPrefix = "x-"
		cfg.Blocks["list"] = "skip"

		data, err := cfg.ToYAML()
		require.NoError(t, err)

		back, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, cfg.AnchorPrefix, back.AnchorPrefix)
		assert.Equal(t, cfg.Blocks, back.Blocks)
		assert.Equal(t, cfg.Width, back.Width)
	})
}
