package services

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// ReminderSvc is the once-per-calendar-day reminder gate.
type ReminderSvc interface {
	// Initialize evaluates the persisted dismissal against today's date.
	Initialize(ctx context.Context) domain.GateState
	ShouldShow() bool
	State() domain.GateState
	// Dismiss hides the reminder for the rest of the day and persists the dismissal.
	Dismiss(ctx context.Context) error
	// ForceShow makes the reminder visible again without touching storage.
	ForceShow()
}
