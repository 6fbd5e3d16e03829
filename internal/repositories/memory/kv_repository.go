// Package memory provides a process-local key-value store. Nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
)

// KVRepository keeps values in a map guarded by a RWMutex.
type KVRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewKVRepository creates an empty in-memory store.
func NewKVRepository() *KVRepository {
	return &KVRepository{values: make(map[string][]byte)}
}

var _ portsrepo.KeyValueStore = (*KVRepository)(nil)

// Load returns a copy of the stored value.
func (r *KVRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: key %s", apperrors.ErrNotFound, key)
	}
	return append([]byte(nil), v...), nil
}

// Save stores a copy of value, replacing whatever was there.
func (r *KVRepository) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key if present.
func (r *KVRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

// NewRepositoryProvider wires the in-memory store as the only repository.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{KV: NewKVRepository()}
}
