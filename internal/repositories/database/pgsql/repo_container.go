package pgsql

import (
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		KV: newPgxKVRepository(dbPool),
		Close: func() error {
			dbPool.Close()
			return nil
		},
	}
}
