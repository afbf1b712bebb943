package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "default", config.Hex.Format)
	assert.False(t, config.Hex.Lower)
	assert.Equal(t, "default", config.Escape.Format)
	assert.Equal(t, "grapheme", config.Segment.Mode)
	assert.Equal(t, "runeseg", config.Segment.Engine)
	assert.Equal(t, "text", config.Dump.Format)
	assert.Equal(t, "binary", config.Scrub.InputFormat)
	assert.Equal(t, "127.0.0.1", config.Server.Bind)
	assert.Equal(t, 8080, config.Server.Port)

	assert.NoError(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "mojibox_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		expectedConfig := DefaultConfig()
		expectedConfig.Hex.Lower = true
		expectedConfig.Hex.Format = "spaced"
		expectedConfig.Segment.Mode = "codepoint"
		expectedConfig.Server.Port = 9000

		err = SaveConfig(expectedConfig, configPath)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, expectedConfig, loadedConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/mojibox.yaml")
		assert.Error(t, err)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "mojibox_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("hex:\n  lower: true\n"), 0600))

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.True(t, loadedConfig.Hex.Lower)
		assert.Equal(t, "grapheme", loadedConfig.Segment.Mode)
		assert.Equal(t, 8080, loadedConfig.Server.Port)
	})

	t.Run("invalid format rejected", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "mojibox_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("hex:\n  format: base64\n"), 0600))

		_, err = LoadConfig(configPath)
		assert.ErrorContains(t, err, "hex.format")
	})
}

func TestValidate(t *testing.T) {
	config := DefaultConfig()
	config.Server.Port = 0
	assert.ErrorContains(t, config.Validate(), "server.port")

	config = DefaultConfig()
	config.Segment.Engine = "icu"
	assert.ErrorContains(t, config.Validate(), "segment.engine")
}

func TestConfigExists(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "mojibox_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	assert.False(t, ConfigExists(configPath))

	require.NoError(t, SaveConfig(DefaultConfig(), configPath))
	assert.True(t, ConfigExists(configPath))
}
