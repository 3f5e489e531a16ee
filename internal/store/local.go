package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"techiehelp/internal/logging"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS chat_history (
		id        TEXT PRIMARY KEY,
		query     TEXT NOT NULL,
		response  TEXT NOT NULL,
		timestamp INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_history_timestamp ON chat_history(timestamp DESC)`,
}

// LocalStore keeps chat records in SQLite. Timestamps are stored as Unix
// nanoseconds; rowid breaks ties so equal stamps still list newest insert first.
type LocalStore struct {
	db     *sql.DB
	dbPath string
	settings
}

// NewLocalStore opens (creating if needed) the database at path.
// ":memory:" gives a private in-memory database.
func NewLocalStore(path string, opts ...Option) (*LocalStore, error) {
	timer := logging.StartTimer(logging.CategoryStore, "NewLocalStore")
	defer timer.Stop()

	logging.Store("Initializing LocalStore at path: %s", path)

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		logging.StoreError("Failed to open database at %s: %v", path, err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			logging.StoreError("Failed to initialize chat_history schema: %v", err)
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return &LocalStore{db: db, dbPath: path, settings: defaultSettings(opts)}, nil
}

// Store implements HistoryStore.
func (s *LocalStore) Store(ctx context.Context, query, response string) (ChatRecord, error) {
	rec := s.newRecord(query, response)

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO chat_history (id, query, response, timestamp) VALUES (?, ?, ?, ?)",
		rec.ID, rec.Query, rec.Response, rec.Timestamp.UnixNano(),
	)
	if err != nil {
		logging.StoreError("Failed to insert chat record %s: %v", rec.ID, err)
		return ChatRecord{}, fmt.Errorf("insert chat record: %w", err)
	}

	logging.StoreDebug("Stored chat record %s: query_len=%d response_len=%d", rec.ID, len(query), len(response))
	return rec, nil
}

// FetchHistory implements HistoryStore.
func (s *LocalStore) FetchHistory(ctx context.Context) ([]ChatRecord, error) {
	timer := logging.StartTimer(logging.CategoryStore, "LocalStore.FetchHistory")
	defer timer.Stop()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, response, timestamp
		 FROM chat_history
		 ORDER BY timestamp DESC, rowid DESC`,
	)
	if err != nil {
		logging.StoreError("Failed to query chat history: %v", err)
		return nil, fmt.Errorf("query chat history: %w", err)
	}
	defer rows.Close()

	records := []ChatRecord{}
	for rows.Next() {
		var rec ChatRecord
		var nanos int64
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.Response, &nanos); err != nil {
			return nil, fmt.Errorf("scan chat record: %w", err)
		}
		rec.Timestamp = time.Unix(0, nanos)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat history: %w", err)
	}

	logging.StoreDebug("Fetched %d chat records", len(records))
	return records, nil
}

// Close closes the database connection.
func (s *LocalStore) Close(context.Context) error {
	logging.Store("Closing LocalStore at %s", s.dbPath)
	return s.db.Close()
}
