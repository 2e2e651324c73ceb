// Package sqlite provides a SQLite-based implementation of the storage interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/folio/folio/pkg/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	collection TEXT    NOT NULL,
	id         INTEGER NOT NULL,
	body       BLOB    NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE TABLE IF NOT EXISTS sequences (
	collection TEXT    PRIMARY KEY,
	value      INTEGER NOT NULL
);`

// SQLiteStorage implements the Store interface on a single SQLite file.
type SQLiteStorage struct {
	db *sql.DB
}

// Open opens (or creates) the database at path. Use ":memory:" for tests.
func Open(path string) (*SQLiteStorage, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, &storage.StorageUnavailableError{Cause: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &storage.StorageUnavailableError{Cause: err}
	}

	// SQLite serialises writers anyway; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, &storage.StorageUnavailableError{Cause: fmt.Errorf("failed to set pragma: %w", err)}
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &storage.StorageUnavailableError{Cause: fmt.Errorf("failed to apply schema: %w", err)}
	}

	return &SQLiteStorage{db: db}, nil
}

// Create inserts a record unless the id already exists.
func (s *SQLiteStorage) Create(ctx context.Context, collection string, id int64, data []byte) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO records (collection, id, body) VALUES (?, ?, ?) ON CONFLICT DO NOTHING`,
		collection, id, data)
	if err != nil {
		return fmt.Errorf("insert %s/%d: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &storage.DuplicateKeyError{Collection: collection, ID: id}
	}
	return nil
}

// Put inserts or replaces a record.
func (s *SQLiteStorage) Put(ctx context.Context, collection string, id int64, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (collection, id, body) VALUES (?, ?, ?)
		 ON CONFLICT (collection, id) DO UPDATE SET body = excluded.body`,
		collection, id, data)
	if err != nil {
		return fmt.Errorf("upsert %s/%d: %w", collection, id, err)
	}
	return nil
}

// Update replaces an existing record.
func (s *SQLiteStorage) Update(ctx context.Context, collection string, id int64, data []byte) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE records SET body = ? WHERE collection = ? AND id = ?`, data, collection, id)
	if err != nil {
		return fmt.Errorf("update %s/%d: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &storage.NotFoundError{Collection: collection, ID: id}
	}
	return nil
}

// Get retrieves a record by id.
func (s *SQLiteStorage) Get(ctx context.Context, collection string, id int64) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM records WHERE collection = ? AND id = ?`, collection, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &storage.NotFoundError{Collection: collection, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("select %s/%d: %w", collection, id, err)
	}
	return body, nil
}

// List returns the collection ordered by id.
func (s *SQLiteStorage) List(ctx context.Context, collection string) ([]storage.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, body FROM records WHERE collection = ? ORDER BY id ASC`, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	records := []storage.Record{}
	for rows.Next() {
		var r storage.Record
		if err := rows.Scan(&r.ID, &r.Data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Delete removes a record.
func (s *SQLiteStorage) Delete(ctx context.Context, collection string, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%d: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &storage.NotFoundError{Collection: collection, ID: id}
	}
	return nil
}

// NextID increments the collection sequence.
func (s *SQLiteStorage) NextID(ctx context.Context, collection string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO sequences (collection, value) VALUES (?, 1)
		 ON CONFLICT (collection) DO UPDATE SET value = value + 1
		 RETURNING value`, collection).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", collection, err)
	}
	return id, nil
}

// Ping checks the database handle.
func (s *SQLiteStorage) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &storage.StorageUnavailableError{Cause: err}
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
