package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	keyMySetting = "mySetting"
	keyBookmarks = "bookmarks"
	keyRecents   = "recents"
)

// SQLiteStore keeps each settings field as a JSON value row in a
// key/value table.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize settings store: %w", err)
	}
	return s, nil
}

// init creates the database schema
func (s *SQLiteStore) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Load reads every stored field over the defaults.
func (s *SQLiteStore) Load(ctx context.Context) (*Settings, error) {
	settings := DefaultSettings()

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}

		var target any
		switch key {
		case keyMySetting:
			target = &settings.MySetting
		case keyBookmarks:
			target = &settings.Bookmarks
		case keyRecents:
			target = &settings.Recents
		default:
			continue
		}
		if err := json.Unmarshal([]byte(value), target); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", key, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if settings.Recents == nil {
		settings.Recents = []string{}
	}
	return settings, nil
}

// Save writes all fields in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, settings *Settings) error {
	values := map[string]any{
		keyMySetting: settings.MySetting,
		keyBookmarks: settings.Bookmarks,
		keyRecents:   settings.Recents,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO settings (key, value, updated_at)
	VALUES (?, ?, ?)
	`

	now := time.Now()
	for key, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		if _, err := tx.ExecContext(ctx, query, key, string(data), now); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Close closes the settings database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
