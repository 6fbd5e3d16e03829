package mapping

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/models"
)

// EncodeDismissal serializes the moment the reminder was dismissed.
func EncodeDismissal(at time.Time) ([]byte, error) {
	return json.Marshal(models.DismissalDocument{DismissedAt: at.Format(time.RFC3339Nano)})
}

// DecodeDismissal parses a stored reminder_dismissed_at value.
// An empty timestamp decodes to a state without DismissedAt.
func DecodeDismissal(raw []byte) (domain.DismissalState, error) {
	var doc models.DismissalDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.DismissalState{}, fmt.Errorf("failed to decode dismissal: %w", err)
	}
	if doc.DismissedAt == "" {
		return domain.DismissalState{}, nil
	}
	at, err := time.Parse(time.RFC3339Nano, doc.DismissedAt)
	if err != nil {
		return domain.DismissalState{}, fmt.Errorf("failed to parse dismissal timestamp %q: %w", doc.DismissedAt, err)
	}
	return domain.DismissalState{DismissedAt: &at}, nil
}
