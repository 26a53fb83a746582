package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Local is the sqlite mirror. It keeps the portfolio usable offline and is
// the write target of last resort when the remote store is unreachable.
type Local struct {
	db *sql.DB
}

// OpenLocal opens (or creates) the sqlite mirror at the given path.
func OpenLocal(path string) (*Local, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store at %s: %w", path, err)
	}
	// Limit open connections to 1 for SQLite to avoid locking issues.
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS records (
		owner      TEXT NOT NULL,
		key        TEXT NOT NULL,
		data       BLOB NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (owner, key)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize local store schema: %w", err)
	}
	return &Local{db: db}, nil
}

// Save implements Gateway by upserting the record.
func (l *Local) Save(ctx context.Context, owner string, key Key, data []byte) error {
	const query = `INSERT INTO records (owner, key, data, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (owner, key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	_, err := l.db.ExecContext(ctx, query, owner, string(key), data, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save %s/%s locally: %w", owner, key, err)
	}
	return nil
}

// Load implements Gateway.
func (l *Local) Load(ctx context.Context, owner string, key Key) ([]byte, error) {
	const query = `SELECT data FROM records WHERE owner = ? AND key = ?`
	var data []byte
	err := l.db.QueryRowContext(ctx, query, owner, string(key)).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s/%s locally: %w", owner, key, err)
	}
	return data, nil
}

// Close closes the underlying database.
func (l *Local) Close() error { return l.db.Close() }
