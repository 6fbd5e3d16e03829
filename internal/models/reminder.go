package models

// DismissalDocument is stored under the reminder_dismissed_at key.
// DismissedAt is kept as RFC 3339 text so a hand-edited value can be detected as corrupt.
type DismissalDocument struct {
	DismissedAt string `json:"dismissedAt"`
}
