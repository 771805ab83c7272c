package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// MySQLStore keeps keys in the local_storage table created by the migrations
// in the schemas package.
type MySQLStore struct {
	db *sqlx.DB
}

func NewMySQLStore(db *sqlx.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (s *MySQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value,
		"SELECT storage_value FROM local_storage WHERE storage_key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("db.GetContext(local_storage) > %w", err)
	}
	return value, true, nil
}

func (s *MySQLStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO local_storage (storage_key, storage_value) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE storage_value = VALUES(storage_value)`,
		key, value); err != nil {
		return fmt.Errorf("db.ExecContext(upsert local_storage) > %w", err)
	}
	return nil
}
