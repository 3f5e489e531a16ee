package config

import "fmt"

// Storage backends.
const (
	BackendMongo  = "mongo"
	BackendSQLite = "sqlite"
)

// ValidBackends lists all supported chat history backends.
var ValidBackends = []string{BackendMongo, BackendSQLite}

// StorageConfig configures where chat records are persisted.
type StorageConfig struct {
	Backend string `yaml:"backend"` // mongo, sqlite

	// MongoDB
	MongoURI   string `yaml:"mongo_uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`

	// SQLite
	SQLitePath string `yaml:"sqlite_path"`
}

func (s StorageConfig) validate() error {
	switch s.Backend {
	case BackendMongo:
		if s.MongoURI == "" || s.Database == "" || s.Collection == "" {
			return fmt.Errorf("mongo backend requires mongo_uri, database and collection")
		}
	case BackendSQLite:
		if s.SQLitePath == "" {
			return fmt.Errorf("sqlite backend requires sqlite_path")
		}
	default:
		return fmt.Errorf("invalid storage backend: %s (valid: %v)", s.Backend, ValidBackends)
	}
	return nil
}
