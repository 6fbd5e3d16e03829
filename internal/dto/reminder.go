package dto

import "github.com/SscSPs/pocket_ledger/internal/core/domain"

// ReminderResponse reports whether the daily reminder should be surfaced.
type ReminderResponse struct {
	ShouldShow bool             `json:"shouldShow"`
	State      domain.GateState `json:"state"`
}
