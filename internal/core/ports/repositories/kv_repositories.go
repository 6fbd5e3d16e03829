package repositories

import (
	"context"
)

// Well-known keys under which the ledger persists its state.
const (
	KeyCurrencyConfig      = "currency_config"
	KeyReminderDismissedAt = "reminder_dismissed_at"
	KeyTransactions        = "transactions"
	KeyCustomCategories    = "custom_categories"
)

// KeyValueReader defines read operations on the key-value store
type KeyValueReader interface {
	// Load returns the raw value stored under key, or apperrors.ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
}

// KeyValueWriter defines write operations on the key-value store
type KeyValueWriter interface {
	// Save replaces the whole value stored under key.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// KeyValueStore combines read and write access.
type KeyValueStore interface {
	KeyValueReader
	KeyValueWriter
}
