package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = "techiehelp.yaml"

// Config holds all TechieHelp assistant configuration.
type Config struct {
	// Core settings
	Name string `yaml:"name"`

	// Generative model
	LLM LLMConfig `yaml:"llm"`

	// Chat history persistence
	Storage StorageConfig `yaml:"storage"`

	// HTTP presentation shell
	Server ServerConfig `yaml:"server"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "TechieHelp",

		LLM: LLMConfig{
			Provider: "gemini",
			Model:    DefaultGeminiModel,
		},

		Storage: StorageConfig{
			Backend:    BackendMongo,
			MongoURI:   "mongodb://localhost:27017/",
			Database:   "techiehelp_db",
			Collection: "chat_history",
			SQLitePath: "data/techiehelp.db",
		},

		Server: ServerConfig{
			Addr:            ":8501",
			MaxUploadBytes:  10 << 20,
			ReadTimeout:     "30s",
			WriteTimeout:    "120s",
			ShutdownTimeout: "10s",
		},

		Logging: LoggingConfig{
			DebugMode:       false,
			Level:           "info",
			Format:          "json",
			Dir:             "logs",
			InteractionFile: "techiehelp_chatbot.log",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// LoadDotEnv loads variables from .env files into the process environment.
// Missing files are ignored; variables already set are never overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// api_key is the lowercase name legacy .env files use;
	// GEMINI_API_KEY wins when both are present.
	if key := os.Getenv("api_key"); key != "" {
		c.LLM.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if model := os.Getenv("TECHIEHELP_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if backend := os.Getenv("TECHIEHELP_STORE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if uri := os.Getenv("TECHIEHELP_MONGO_URI"); uri != "" {
		c.Storage.MongoURI = uri
	}
	if path := os.Getenv("TECHIEHELP_SQLITE_PATH"); path != "" {
		c.Storage.SQLitePath = path
	}

	if addr := os.Getenv("TECHIEHELP_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return err
	}
	if err := c.Storage.validate(); err != nil {
		return err
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive, got %d", c.Server.MaxUploadBytes)
	}
	return nil
}
