// Package sqlite stores ledger documents in a single-file SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
)

type KVRepository struct {
	db *sql.DB
}

// NewKVRepository wraps an open, migrated database.
func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

var _ portsrepo.KeyValueStore = (*KVRepository)(nil)

func (r *KVRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM ledger_kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: key %s", apperrors.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to load key %s: %w", key, err)
	}
	return value, nil
}

func (r *KVRepository) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO ledger_kv (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save key %s: %w", key, err)
	}
	return nil
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ledger_kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// NewRepositoryProvider exposes db as the ledger's key-value store. Close closes db.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		KV:    NewKVRepository(db),
		Close: db.Close,
	}
}
