package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	DebugMode       bool            `yaml:"debug_mode"`
	Level           string          `yaml:"level"`  // debug, info, warn, error
	Format          string          `yaml:"format"` // json, text
	Dir             string          `yaml:"dir"`
	InteractionFile string          `yaml:"interaction_file"`
	Categories      map[string]bool `yaml:"categories"`
}
