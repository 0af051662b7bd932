package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should load with defaults and an API key", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-api-key")
		t.Setenv("SERVER_PORT", "")
		t.Setenv("REDIS_HOST", "")
		t.Setenv("GEMINI_MODEL", "")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "localhost", cfg.RedisHost)
		assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
		assert.Equal(t, "test-api-key", cfg.GeminiAPIKey)
	})

	t.Run("should fail without an API key", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY_FILE", "")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set")
	})

	t.Run("should read the API key from a file", func(t *testing.T) {
		keyFile := filepath.Join(t.TempDir(), "gemini_api_key")
		require.NoError(t, os.WriteFile(keyFile, []byte("file-key\n"), 0o600))
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY_FILE", keyFile)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.GeminiAPIKey)
	})

	t.Run("should reject an empty key file", func(t *testing.T) {
		keyFile := filepath.Join(t.TempDir(), "gemini_api_key")
		require.NoError(t, os.WriteFile(keyFile, []byte("  \n"), 0o600))
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY_FILE", keyFile)

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key file is empty")
	})

	t.Run("should reject an invalid REDIS_DB", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-api-key")
		t.Setenv("REDIS_DB", "not-a-number")

		_, err := LoadConfig()

		require.Error(t, err)
	})

	t.Run("should respect environment overrides", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-api-key")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.ServerPort)
		assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	})
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{
		ServerPort:   "8080",
		RedisHost:    "localhost",
		RedisPort:    "6379",
		GeminiAPIKey: "key",
		GeminiAPIURL: "https://generativelanguage.googleapis.com/v1beta",
		GeminiModel:  "gemini-2.5-flash",
	}
	assert.NoError(t, ValidateConfig(valid))

	missingRedis := *valid
	missingRedis.RedisHost = ""
	missingRedis.RedisPort = ""
	assert.Error(t, ValidateConfig(&missingRedis))

	negativeDB := *valid
	negativeDB.RedisDB = -1
	assert.Error(t, ValidateConfig(&negativeDB))
}
