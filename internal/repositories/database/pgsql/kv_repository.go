package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxKVRepository struct {
	BaseRepository
}

// newPgxKVRepository creates a new repository for ledger documents.
func newPgxKVRepository(pool *pgxpool.Pool) *PgxKVRepository {
	return &PgxKVRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.KeyValueStore = (*PgxKVRepository)(nil)

// Load retrieves the document stored under key.
func (r *PgxKVRepository) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM ledger_kv WHERE key = $1;`

	var value []byte
	err := r.Pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: key %s", apperrors.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to load key %s: %w", key, err)
	}
	return value, nil
}

// Save upserts the whole document in a single statement.
func (r *PgxKVRepository) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO ledger_kv (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := r.Pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save key %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Missing keys are ignored.
func (r *PgxKVRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM ledger_kv WHERE key = $1;`, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
