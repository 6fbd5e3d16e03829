package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/utils"
)

// OwnerSubject is the JWT subject issued to the single ledger owner.
const OwnerSubject = "owner"

// AuthSettings is the subset of configuration the auth service needs.
type AuthSettings struct {
	PasswordHash string
	JWTSecret    string
	JWTExpiry    time.Duration
	JWTIssuer    string
}

// authService authenticates the ledger owner with a bcrypt-hashed passphrase
// and issues short-lived HS256 tokens.
type authService struct {
	BaseService
	settings AuthSettings
}

// NewAuthService creates the owner auth service.
func NewAuthService(settings AuthSettings) portssvc.AuthSvc {
	return &authService{settings: settings}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Enabled() bool {
	return s.settings.PasswordHash != ""
}

func (s *authService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if !s.Enabled() {
		return "", time.Time{}, fmt.Errorf("%w: authentication is disabled", apperrors.ErrValidation)
	}
	if !utils.CheckOwnerPassword(password, s.settings.PasswordHash) {
		s.LogWarn(ctx, nil, "Owner login failed")
		return "", time.Time{}, fmt.Errorf("%w: invalid password", apperrors.ErrUnauthorized)
	}

	now := s.Now()
	token, err := utils.GenerateJWT(OwnerSubject, s.settings.JWTSecret, now, s.settings.JWTExpiry, s.settings.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	expiresAt := now.Add(s.settings.JWTExpiry)
	s.LogInfo(ctx, "Owner logged in", slog.Time("expires_at", expiresAt))
	return token, expiresAt, nil
}

func (s *authService) ValidateToken(tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.settings.JWTSecret, s.settings.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	if claims.Subject != OwnerSubject {
		return "", fmt.Errorf("%w: unexpected subject", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}
