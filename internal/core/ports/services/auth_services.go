package services

import (
	"context"
	"time"
)

// AuthSvc authenticates the single ledger owner.
type AuthSvc interface {
	// Enabled reports whether a password is configured. When it is not the API runs unauthenticated.
	Enabled() bool

	// Login checks the passphrase and issues an access token.
	Login(ctx context.Context, password string) (string, time.Time, error)

	// ValidateToken parses an access token and returns its subject.
	ValidateToken(tokenString string) (string, error)
}
