package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides_APIKey(t *testing.T) {
	t.Run("api_key sets the key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("api_key", "legacy-key")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "legacy-key", cfg.LLM.APIKey)
	})

	t.Run("GEMINI_API_KEY wins over api_key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("api_key", "legacy-key")
		t.Setenv("GEMINI_API_KEY", "gemini-key")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "gemini-key", cfg.LLM.APIKey)
	})

	t.Run("empty env keeps file value", func(t *testing.T) {
		clearEnv(t)

		cfg := &Config{LLM: LLMConfig{APIKey: "from-file"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "from-file", cfg.LLM.APIKey)
	})
}

func TestEnvOverrides_StorageAndServer(t *testing.T) {
	clearEnv(t)
	t.Setenv("TECHIEHELP_STORE_BACKEND", "sqlite")
	t.Setenv("TECHIEHELP_MONGO_URI", "mongodb://db:27017/")
	t.Setenv("TECHIEHELP_SQLITE_PATH", "/tmp/chat.db")
	t.Setenv("TECHIEHELP_ADDR", ":7000")
	t.Setenv("TECHIEHELP_MODEL", "gemini-pro")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "mongodb://db:27017/", cfg.Storage.MongoURI)
	assert.Equal(t, "/tmp/chat.db", cfg.Storage.SQLitePath)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "gemini-pro", cfg.LLM.Model)
}
