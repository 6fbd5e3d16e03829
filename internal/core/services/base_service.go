package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/core/ports/events"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher events.Publisher
	Clock     func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning, attaching err when it is not nil
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Now returns the service clock, defaulting to time.Now.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Publish hands an event to the publisher. Failures are logged and never returned:
// the state change has already been persisted.
func (s *BaseService) Publish(ctx context.Context, eventType domain.LedgerEventType, attrs map[string]string) {
	if s.Publisher == nil {
		return
	}
	event := domain.NewLedgerEvent(eventType, attrs)
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.LogWarn(ctx, err, "Failed to publish ledger event", slog.String("event_type", string(eventType)))
	}
}
