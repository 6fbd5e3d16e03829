package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// MinOwnerPasswordLength is the shortest owner password accepted for hashing.
const MinOwnerPasswordLength = 8

// MinJWTSecretBytes keeps generated secrets above the length config requires.
const MinJWTSecretBytes = 16

// HashOwnerPassword returns the bcrypt hash to store in OWNER_PASSWORD_HASH.
func HashOwnerPassword(password string) (string, error) {
	if len(password) < MinOwnerPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, MinOwnerPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt rejects passwords over 72 bytes
		return "", fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return string(hash), nil
}

// CheckOwnerPassword reports whether password matches the stored owner hash.
// A malformed hash never matches.
func CheckOwnerPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWTSecret returns n random bytes hex encoded, so the secret is 2n characters long.
func GenerateJWTSecret(n int) (string, error) {
	if n < MinJWTSecretBytes {
		return "", fmt.Errorf("%w: secret needs at least %d random bytes", apperrors.ErrValidation, MinJWTSecretBytes)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
