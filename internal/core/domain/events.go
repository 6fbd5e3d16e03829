package domain

import "time"

// LedgerEventType names a state change worth telling the outside world about.
type LedgerEventType string

const (
	EventCurrencyAdded       LedgerEventType = "currency.added"
	EventCurrencyRemoved     LedgerEventType = "currency.removed"
	EventCurrencyRateUpdated LedgerEventType = "currency.rate_updated"
	EventBaseCurrencyChanged LedgerEventType = "currency.base_changed"
	EventTransactionRecorded LedgerEventType = "transaction.recorded"
	EventTransactionDeleted  LedgerEventType = "transaction.deleted"
	EventReminderDismissed   LedgerEventType = "reminder.dismissed"
)

// LedgerEvent is published after a mutation has been persisted.
type LedgerEvent struct {
	Type       LedgerEventType   `json:"type"`
	OccurredAt time.Time         `json:"occurredAt"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// NewLedgerEvent stamps an event with the current time.
func NewLedgerEvent(t LedgerEventType, attrs map[string]string) LedgerEvent {
	return LedgerEvent{Type: t, OccurredAt: time.Now().UTC(), Attributes: attrs}
}
