package session

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"foodexchange-admin/utils"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// SQLiteStore keeps sessions in a SQLite database
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path and migrates it.
// ":memory:" gives a private in-memory database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := path
	if path == ":memory:" {
		dsn = "file::memory:?_foreign_keys=on"
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("session store: %w", err)
		}
		dsn = "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("session store: open %s: %w", path, err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("session store: migrate: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Create starts a new empty session
func (s *SQLiteStore) Create(ctx context.Context, ttl time.Duration) (Session, error) {
	now := s.now().UTC()
	sess := Session{
		ID:        utils.GenerateID(),
		Values:    map[string]string{},
		CreatedAt: now.Truncate(time.Second),
		ExpiresAt: now.Add(ttl).Truncate(time.Second),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, created_at, expires_at) VALUES (?, ?, ?)`,
		sess.ID, sess.CreatedAt.Unix(), sess.ExpiresAt.Unix())
	if err != nil {
		return Session{}, fmt.Errorf("session store: create: %w", err)
	}
	return sess, nil
}

// Get loads a live session with its values
func (s *SQLiteStore) Get(ctx context.Context, id string) (Session, error) {
	var created, expires int64
	err := s.db.QueryRowContext(ctx,
		`SELECT created_at, expires_at FROM sessions WHERE id = ?`, id).Scan(&created, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, fmt.Errorf("get session: %w", ErrSessionNotFound)
	}
	if err != nil {
		return Session{}, fmt.Errorf("session store: get: %w", err)
	}

	sess := Session{
		ID:        id,
		Values:    map[string]string{},
		CreatedAt: time.Unix(created, 0).UTC(),
		ExpiresAt: time.Unix(expires, 0).UTC(),
	}
	if !s.now().Before(sess.ExpiresAt) {
		return Session{}, fmt.Errorf("get session: %w - expired", ErrSessionNotFound)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM session_values WHERE session_id = ?`, id)
	if err != nil {
		return Session{}, fmt.Errorf("session store: get values: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return Session{}, fmt.Errorf("session store: scan value: %w", err)
		}
		sess.Values[k] = v
	}
	if err := rows.Err(); err != nil {
		return Session{}, fmt.Errorf("session store: get values: %w", err)
	}
	return sess, nil
}

// Set upserts values on a session
func (s *SQLiteStore) Set(ctx context.Context, id string, values map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("session store: set: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM sessions WHERE id = ?`, id).Scan(&exists); err != nil {
		return fmt.Errorf("session store: set: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("set session values: %w", ErrSessionNotFound)
	}

	for k, v := range values {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO session_values (session_id, key, value) VALUES (?, ?, ?)
			 ON CONFLICT(session_id, key) DO UPDATE SET value = excluded.value`, id, k, v)
		if err != nil {
			return fmt.Errorf("session store: set %s: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("session store: set: %w", err)
	}
	return nil
}

// Clear removes every value of a session, logging it out
func (s *SQLiteStore) Clear(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_values WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("session store: clear: %w", err)
	}
	return nil
}

// PurgeExpired deletes sessions past their expiry
func (s *SQLiteStore) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, s.now().UTC().Unix())
	if err != nil {
		return 0, fmt.Errorf("session store: purge: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
