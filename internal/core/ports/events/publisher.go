package events

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// Publisher delivers ledger events to whoever is listening outside the process.
type Publisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, domain.LedgerEvent) error { return nil }

var _ Publisher = NopPublisher{}
