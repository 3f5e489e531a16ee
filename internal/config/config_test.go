package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable applyEnvOverrides reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"api_key", "GEMINI_API_KEY", "TECHIEHELP_MODEL",
		"TECHIEHELP_STORE_BACKEND", "TECHIEHELP_MONGO_URI", "TECHIEHELP_SQLITE_PATH",
		"TECHIEHELP_ADDR",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "TechieHelp", cfg.Name)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, BackendMongo, cfg.Storage.Backend)
	assert.Equal(t, "mongodb://localhost:27017/", cfg.Storage.MongoURI)
	assert.Equal(t, "chat_history", cfg.Storage.Collection)
	assert.Equal(t, "techiehelp_chatbot.log", cfg.Logging.InteractionFile)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "techiehelp.yaml")

	cfg := DefaultConfig()
	cfg.LLM.APIKey = "key-from-file"
	cfg.Storage.Backend = BackendSQLite
	cfg.Server.Addr = ":9090"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "key-from-file", loaded.LLM.APIKey)
	assert.Equal(t, BackendSQLite, loaded.Storage.Backend)
	assert.Equal(t, ":9090", loaded.Server.Addr)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: sqlite\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "data/techiehelp.db", cfg.Storage.SQLitePath)
	assert.Equal(t, DefaultGeminiModel, cfg.LLM.Model)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"missing api key", func(c *Config) {}, true},
		{"valid mongo", func(c *Config) { c.LLM.APIKey = "k" }, false},
		{"valid sqlite", func(c *Config) {
			c.LLM.APIKey = "k"
			c.Storage.Backend = BackendSQLite
		}, false},
		{"unknown provider", func(c *Config) {
			c.LLM.APIKey = "k"
			c.LLM.Provider = "openai"
		}, true},
		{"unknown backend", func(c *Config) {
			c.LLM.APIKey = "k"
			c.Storage.Backend = "redis"
		}, true},
		{"mongo without uri", func(c *Config) {
			c.LLM.APIKey = "k"
			c.Storage.MongoURI = ""
		}, true},
		{"sqlite without path", func(c *Config) {
			c.LLM.APIKey = "k"
			c.Storage.Backend = BackendSQLite
			c.Storage.SQLitePath = ""
		}, true},
		{"zero upload limit", func(c *Config) {
			c.LLM.APIKey = "k"
			c.Server.MaxUploadBytes = 0
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServerConfig_Durations(t *testing.T) {
	s := ServerConfig{ReadTimeout: "5s", WriteTimeout: "garbage"}
	assert.Equal(t, 5*time.Second, s.GetReadTimeout())
	assert.Equal(t, 120*time.Second, s.GetWriteTimeout())
	assert.Equal(t, 10*time.Second, s.GetShutdownTimeout())
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("TECHIEHELP_DOTENV_PROBE", "")
	os.Unsetenv("TECHIEHELP_DOTENV_PROBE")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("TECHIEHELP_DOTENV_PROBE=from-dotenv\n"), 0644))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), envPath))
	assert.Equal(t, "from-dotenv", os.Getenv("TECHIEHELP_DOTENV_PROBE"))
}
