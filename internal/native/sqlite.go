package native

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/warpdl/warpstore/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
    origin TEXT NOT NULL,
    key    TEXT NOT NULL,
    value  TEXT NOT NULL,
    seq    INTEGER NOT NULL,
    PRIMARY KEY (origin, key)
);
CREATE INDEX IF NOT EXISTS items_origin_seq ON items (origin, seq);
`

// SQLiteStorage keeps the entries of one origin in a SQLite database.
// Several origins may share a file; each only sees its own rows. Keys are
// listed in first-insertion order.
type SQLiteStorage struct {
	db     *sql.DB
	origin string
	log    logger.Logger
}

// SQLiteOption configures a SQLiteStorage.
type SQLiteOption func(*SQLiteStorage)

// WithLogger sets the logger used for query failures in the read
// operations, which cannot return errors.
func WithLogger(l logger.Logger) SQLiteOption {
	return func(s *SQLiteStorage) {
		s.log = logger.OrNop(l)
	}
}

// Open opens (creating if needed) the database at path for origin.
func Open(path, origin string, opts ...SQLiteOption) (*SQLiteStorage, error) {
	return open(path, origin, opts)
}

// OpenMemory opens a private in-memory database for origin. Its content
// is lost on Close.
func OpenMemory(origin string, opts ...SQLiteOption) (*SQLiteStorage, error) {
	return open(":memory:", origin, opts)
}

func open(dsn, origin string, opts []SQLiteOption) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open storage database: %w", err)
	}
	// Every connection to ":memory:" is a distinct database.
	db.SetMaxOpenConns(1)
	s := &SQLiteStorage{db: db, origin: origin, log: logger.NewNopLogger()}
	for _, apply := range opts {
		apply(s)
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStorage) migrate() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error: failed to begin schema transaction: %w", err)
	}
	if _, err := tx.Exec(schema); err != nil {
		tx.Rollback()
		return fmt.Errorf("error: failed to create storage schema: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error: failed to commit storage schema: %w", err)
	}
	return nil
}

// Origin returns the origin the store is scoped to.
func (s *SQLiteStorage) Origin() string {
	return s.origin
}

func (s *SQLiteStorage) SetItem(key, value string) error {
	_, err := s.db.Exec(`
        INSERT INTO items (origin, key, value, seq)
        VALUES (?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM items WHERE origin = ?))
        ON CONFLICT (origin, key) DO UPDATE SET value = excluded.value
    `, s.origin, key, value, s.origin)
	if err != nil {
		return fmt.Errorf("error: failed to store item: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) GetItem(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM items WHERE origin = ? AND key = ?`, s.origin, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Error("native: get item: %v", err)
		}
		return "", false
	}
	return value, true
}

func (s *SQLiteStorage) RemoveItem(key string) error {
	if _, err := s.db.Exec(`DELETE FROM items WHERE origin = ? AND key = ?`, s.origin, key); err != nil {
		return fmt.Errorf("error: failed to remove item: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Key(index int) (string, bool) {
	if index < 0 {
		return "", false
	}
	var key string
	err := s.db.QueryRow(`
        SELECT key FROM items
        WHERE origin = ?
        ORDER BY seq ASC
        LIMIT 1 OFFSET ?
    `, s.origin, index).Scan(&key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Error("native: key %d: %v", index, err)
		}
		return "", false
	}
	return key, true
}

func (s *SQLiteStorage) Length() int {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM items WHERE origin = ?`, s.origin).Scan(&n); err != nil {
		s.log.Error("native: length: %v", err)
		return 0
	}
	return n
}

func (s *SQLiteStorage) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM items WHERE origin = ?`, s.origin); err != nil {
		return fmt.Errorf("error: failed to clear items: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
