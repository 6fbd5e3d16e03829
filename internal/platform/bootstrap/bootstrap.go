// Package bootstrap assembles storage, event publishing and services from
// configuration. The HTTP server and the CLI share it.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pocket_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/core/services"
	"github.com/SscSPs/pocket_ledger/internal/events/amqp"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/SscSPs/pocket_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/pocket_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/pocket_ledger/internal/repositories/memory"
	"github.com/SscSPs/pocket_ledger/pkg/database"
)

// App is a fully initialized set of services plus the resources behind them.
type App struct {
	Services *portssvc.ServiceContainer

	closers []func() error
}

// Close releases the publisher and the storage backend, in that order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OpenRepositories opens the configured storage backend and applies its migrations.
func OpenRepositories(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		slog.Warn("Using in-memory storage; ledger state is lost on exit")
		return memory.NewRepositoryProvider(), nil

	case config.StorageSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		if err := database.MigrateSQLite(db); err != nil {
			db.Close()
			return portsrepo.RepositoryProvider{}, err
		}
		slog.Info("SQLite storage ready", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(db), nil

	case config.StoragePostgres:
		if err := database.MigratePostgres(cfg.DatabaseURL); err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		return pgsql.NewRepositoryProvider(pool), nil

	default:
		return portsrepo.RepositoryProvider{}, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// NewPublisher connects to the broker when AMQP_URL is set. The returned close
// func is never nil.
func NewPublisher(cfg *config.Config) (events.Publisher, func() error, error) {
	if cfg.AMQPURL == "" {
		return events.NopPublisher{}, func() error { return nil }, nil
	}
	p, err := amqp.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect event publisher: %w", err)
	}
	return p, p.Close, nil
}

// NewApp opens storage and the publisher, builds the services, and loads the
// currency set and the reminder state.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}

	repos, err := OpenRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if repos.Close != nil {
		app.closers = append(app.closers, repos.Close)
	}

	publisher, closePublisher, err := NewPublisher(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.closers = append(app.closers, closePublisher)

	app.Services = services.NewServiceContainer(cfg, repos, publisher)

	currencies, err := app.Services.Currency.Initialize(ctx)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to load currency configuration: %w", err)
	}
	state := app.Services.Reminder.Initialize(ctx)

	slog.Info("Ledger initialized",
		slog.String("storage", cfg.StorageBackend),
		slog.String("base_currency", app.Services.Currency.CurrentBase(ctx).Code),
		slog.Int("currency_count", len(currencies)),
		slog.String("reminder", string(state)))
	return app, nil
}
