package repositories

// RepositoryProvider holds the storage dependencies needed by services.
// Every piece of ledger state lives in the single key-value store.
type RepositoryProvider struct {
	KV KeyValueStore

	// Close releases the backend (pool, file handle). Nil for in-memory storage.
	Close func() error
}
