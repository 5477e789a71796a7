package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/apimgr/searchconv/src/database"
	"github.com/apimgr/searchconv/src/model"
)

// SQLStore implements Store on the settings table. The schema comes from
// database migrations.
type SQLStore struct {
	db     *database.DB
	upsert string
}

// NewSQLStore wraps an open, migrated database
func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{
		db:     db,
		upsert: db.Dialect().Upsert("settings", "name", "data", "updated_at"),
	}
}

// Get retrieves a value
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := s.db.QueryRow(ctx, "SELECT data FROM settings WHERE name = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

// Set inserts or replaces a value
func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx, s.upsert, key, string(value), time.Now().UnixMilli())
	return err
}

// Delete removes a value
func (s *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, "DELETE FROM settings WHERE name = ?", key)
	return err
}

func (s *SQLStore) Ping(ctx context.Context) error { return s.db.Ping(ctx) }

// Close is a no-op; the database is owned by the caller.
func (s *SQLStore) Close() error { return nil }

func (s *SQLStore) Backend() string { return BackendSQL }
