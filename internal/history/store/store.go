// Package store persists the calculation history and user settings in SQLite
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/msto63/sigfig/foundation/core/errors"
)

// DefaultMaxEntries is the number of history entries kept
const DefaultMaxEntries = 40

// Kind classifies a history entry
type Kind string

const (
	KindCount    Kind = "count"
	KindRound    Kind = "round"
	KindCombine  Kind = "combine"
	KindEvaluate Kind = "evaluate"
)

// Entry is one recorded calculation
type Entry struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryStore defines the interface for history persistence
type HistoryStore interface {
	Add(ctx context.Context, kind Kind, text string) (*Entry, error)
	List(ctx context.Context, limit int) ([]*Entry, error)
	Clear(ctx context.Context) error
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	Close() error
}

// Config holds configuration for the SQLite store
type Config struct {
	Path       string
	MaxEntries int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path:       "./data/history.db",
		MaxEntries: DefaultMaxEntries,
	}
}

// SQLiteStore implements HistoryStore using SQLite
type SQLiteStore struct {
	db         *sql.DB
	mu         sync.RWMutex
	maxEntries int
	now        func() time.Time
}

// New opens (and creates if needed) the history database at cfg.Path.
// The special path ":memory:" keeps everything in memory.
func New(cfg Config) (*SQLiteStore, error) {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}

	dsn := cfg.Path
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, errors.HistoryDatabaseError("open", fmt.Errorf("failed to create directory: %w", err))
		}
		dsn = cfg.Path + "?_journal_mode=WAL&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.HistoryDatabaseError("open", err)
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, maxEntries: cfg.MaxEntries, now: time.Now}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, errors.HistoryDatabaseError("init_schema", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Add records an entry and prunes everything beyond the newest MaxEntries
func (s *SQLiteStore) Add(ctx context.Context, kind Kind, text string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &Entry{
		ID:        uuid.New().String(),
		Kind:      kind,
		Text:      text,
		CreatedAt: s.now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.HistoryDatabaseError("add", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO history (id, kind, text, created_at) VALUES (?, ?, ?, ?)
	`, entry.ID, string(entry.Kind), entry.Text, entry.CreatedAt); err != nil {
		return nil, errors.HistoryDatabaseError("add", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM history WHERE seq NOT IN (
			SELECT seq FROM history ORDER BY seq DESC LIMIT ?
		)
	`, s.maxEntries); err != nil {
		return nil, errors.HistoryDatabaseError("prune", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.HistoryDatabaseError("add", err)
	}
	return entry, nil
}

// List returns up to limit entries, newest first. limit <= 0 returns all.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = s.maxEntries
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, text, created_at FROM history
		ORDER BY seq DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.HistoryDatabaseError("list", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var kind string
		if err := rows.Scan(&e.ID, &kind, &e.Text, &e.CreatedAt); err != nil {
			return nil, errors.HistoryDatabaseError("list", err)
		}
		e.Kind = Kind(kind)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.HistoryDatabaseError("list", err)
	}
	return entries, nil
}

// Clear removes all history entries. Settings are kept.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return errors.HistoryDatabaseError("clear", err)
	}
	return nil
}

// GetSetting returns the value stored under key
func (s *SQLiteStore) GetSetting(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.HistoryDatabaseError("get_setting", err)
	}
	return value, true, nil
}

// SetSetting stores value under key, replacing any previous value
func (s *SQLiteStore) SetSetting(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, s.now().UTC())
	if err != nil {
		return errors.HistoryDatabaseError("set_setting", err)
	}
	return nil
}

// Count returns the number of stored entries
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, errors.HistoryDatabaseError("count", err)
	}
	return n, nil
}

// PingContext verifies the database connection
func (s *SQLiteStore) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
