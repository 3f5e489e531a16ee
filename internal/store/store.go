// Package store persists chat records. Records are insert-only and history is
// always returned most recent first.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"techiehelp/internal/config"
)

// ChatRecord is one answered query.
type ChatRecord struct {
	ID        string    `json:"id" bson:"_id"`
	Query     string    `json:"query" bson:"query"`
	Response  string    `json:"response" bson:"response"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// HistoryStore is the persistence adapter used by the assistant.
type HistoryStore interface {
	// Store appends a record stamped with the current instant.
	Store(ctx context.Context, query, response string) (ChatRecord, error)
	// FetchHistory returns every record, timestamp descending.
	FetchHistory(ctx context.Context) ([]ChatRecord, error)
	Close(ctx context.Context) error
}

// Option customises a store.
type Option func(*settings)

type settings struct {
	now   func() time.Time
	newID func() string
}

func defaultSettings(opts []Option) settings {
	s := settings{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// WithClock overrides the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithIDGenerator overrides record ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *settings) { s.newID = newID }
}

func (s settings) newRecord(query, response string) ChatRecord {
	return ChatRecord{
		ID:        s.newID(),
		Query:     query,
		Response:  response,
		Timestamp: s.now(),
	}
}

// Open connects the backend named by cfg.Backend.
func Open(ctx context.Context, cfg config.StorageConfig, opts ...Option) (HistoryStore, error) {
	switch cfg.Backend {
	case config.BackendMongo:
		return NewMongoStore(ctx, cfg.MongoURI, cfg.Database, cfg.Collection, opts...)
	case config.BackendSQLite:
		return NewLocalStore(cfg.SQLitePath, opts...)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Backend)
	}
}
