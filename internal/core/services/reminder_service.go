package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
)

// reminderService shows the daily reminder at most once per calendar day.
// Days are compared in location, not by elapsed hours.
type reminderService struct {
	BaseService
	kv       portsrepo.KeyValueStore
	location *time.Location

	mu    sync.RWMutex
	state domain.GateState
}

// ReminderServiceOption is a functional option for configuring the reminder service
type ReminderServiceOption func(*reminderService)

// WithReminderClock overrides the clock. Tests use it to pin "today".
func WithReminderClock(clock func() time.Time) ReminderServiceOption {
	return func(s *reminderService) {
		s.Clock = clock
	}
}

// WithReminderLocation sets the time zone that defines calendar days.
func WithReminderLocation(loc *time.Location) ReminderServiceOption {
	return func(s *reminderService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithReminderPublisher sets where dismissal events are sent.
func WithReminderPublisher(p events.Publisher) ReminderServiceOption {
	return func(s *reminderService) {
		s.Publisher = p
	}
}

// NewReminderService creates a gate in the pending state.
func NewReminderService(kv portsrepo.KeyValueStore, options ...ReminderServiceOption) portssvc.ReminderSvc {
	svc := &reminderService{
		kv:       kv,
		location: time.Local,
		state:    domain.GatePending,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReminderSvc = (*reminderService)(nil)

func (s *reminderService) startOfDay(t time.Time) time.Time {
	t = t.In(s.location)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.location)
}

func (s *reminderService) setState(state domain.GateState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Initialize decides whether today's reminder is due. Any problem reading the
// stored dismissal shows the reminder.
func (s *reminderService) Initialize(ctx context.Context) domain.GateState {
	state := s.evaluate(ctx)
	s.setState(state)
	s.LogDebug(ctx, "Reminder gate initialized", slog.String("state", string(state)))
	return state
}

func (s *reminderService) evaluate(ctx context.Context) domain.GateState {
	raw, err := s.kv.Load(ctx, portsrepo.KeyReminderDismissedAt)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Failed to read reminder dismissal, showing reminder")
		}
		return domain.GateShown
	}

	dismissal, err := mapping.DecodeDismissal(raw)
	if err != nil {
		s.LogWarn(ctx, err, "Stored reminder dismissal is corrupt, showing reminder")
		return domain.GateShown
	}
	if dismissal.DismissedAt == nil {
		return domain.GateShown
	}

	today := s.startOfDay(s.Now())
	dismissedDay := s.startOfDay(*dismissal.DismissedAt)
	if dismissedDay.Before(today) {
		return domain.GateShown
	}
	// Same day, or a future date after a clock change: stay hidden.
	return domain.GateDismissedToday
}

func (s *reminderService) ShouldShow() bool {
	return s.State() == domain.GateShown
}

func (s *reminderService) State() domain.GateState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dismiss hides the reminder immediately, then records the dismissal time.
// If the write fails the reminder stays hidden for this process only.
func (s *reminderService) Dismiss(ctx context.Context) error {
	s.setState(domain.GateDismissedToday)

	now := s.Now()
	raw, err := mapping.EncodeDismissal(now)
	if err != nil {
		return fmt.Errorf("failed to encode reminder dismissal: %w", err)
	}
	if err := s.kv.Save(ctx, portsrepo.KeyReminderDismissedAt, raw); err != nil {
		s.LogError(ctx, err, "Failed to persist reminder dismissal")
		return fmt.Errorf("%w: failed to save reminder dismissal: %w", apperrors.ErrStorageUnavailable, err)
	}

	s.LogInfo(ctx, "Reminder dismissed for today", slog.Time("dismissed_at", now))
	s.Publish(ctx, domain.EventReminderDismissed, map[string]string{"dismissed_at": now.Format(time.RFC3339)})
	return nil
}

// ForceShow makes the reminder visible again. Nothing is persisted.
func (s *reminderService) ForceShow() {
	s.setState(domain.GateShown)
}
