package domain

import "time"

// GateState is the daily reminder's state.
type GateState string

const (
	GatePending        GateState = "pending"
	GateShown          GateState = "shown"
	GateDismissedToday GateState = "dismissedToday"
)

// DismissalState records when the daily reminder was last dismissed.
// A nil DismissedAt means it never was.
type DismissalState struct {
	DismissedAt *time.Time `json:"dismissedAt,omitempty"`
}
