package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var c Config
	assert.Equal(t, DefaultMaxValue, c.MaxValue())
	assert.True(t, c.AuditEnabled())
	assert.NoError(t, c.Validate())
	assert.False(t, c.IsSet("limits.max_value"))
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"limits.max_value", "128"},
		{"audit.enabled", "false"},
		{"audit.enabled", "TRUE"},
		{"catalog.path", "ops/templates.yaml"},
	}
	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			var c Config
			require.NoError(t, c.Set(tc.key, tc.value))
			got, err := c.Get(tc.key)
			require.NoError(t, err)
			assert.True(t, strings.EqualFold(tc.value, got), "got %q", got)
			assert.True(t, c.IsSet(tc.key))
		})
	}
}

func TestSet_Invalid(t *testing.T) {
	var c Config
	assert.ErrorIs(t, c.Set("limits.max_value", "0"), ErrInvalidValue)
	assert.ErrorIs(t, c.Set("limits.max_value", "lots"), ErrInvalidValue)
	assert.ErrorIs(t, c.Set("audit.enabled", "yes"), ErrInvalidValue)
	assert.ErrorIs(t, c.Set("author.name", "x"), ErrUnknownKey)

	_, err := c.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Dir, "config.yaml")

	c, err := loadPath(path, ScopeLocal)
	require.NoError(t, err)
	require.NoError(t, c.Set("limits.max_value", "64"))
	require.NoError(t, c.Set("catalog.path", "t.yaml"))
	require.NoError(t, c.Save())

	loaded, err := loadPath(path, ScopeLocal)
	require.NoError(t, err)
	assert.Equal(t, 64, loaded.MaxValue())
	assert.Equal(t, "t.yaml", loaded.Catalog.Path)
	assert.Equal(t, ScopeLocal, loaded.Scope())
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("limits: [\n"), 0644))
		_, err := loadPath(path, ScopeGlobal)
		assert.ErrorContains(t, err, "malformed config file")
	})

	t.Run("out of range", func(t *testing.T) {
		path := filepath.Join(dir, "range.yaml")
		require.NoError(t, os.WriteFile(path, []byte("limits:\n  max_value: 0\n"), 0644))
		_, err := loadPath(path, ScopeGlobal)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}
