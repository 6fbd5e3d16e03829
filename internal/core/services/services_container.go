package services

import (
	"github.com/SscSPs/pocket_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The currency ledger and the reminder gate still need Initialize before use.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.Publisher) *portssvc.ServiceContainer {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyLedgerService(repos.KV,
		WithDefaultBaseCurrency(cfg.DefaultBaseCurrency),
		WithCurrencyLedgerPublisher(publisher),
	)
	container.Category = NewCategoryService(repos.KV)
	container.Transaction = NewTransactionService(repos.KV, container.Currency, container.Category,
		WithTransactionPublisher(publisher),
	)
	container.Reporting = NewReportingService(container.Currency, container.Transaction, container.Category)
	container.Reminder = NewReminderService(repos.KV,
		WithReminderLocation(cfg.Location),
		WithReminderPublisher(publisher),
	)
	container.Auth = NewAuthService(AuthSettings{
		PasswordHash: cfg.OwnerPasswordHash,
		JWTSecret:    cfg.JWTSecret,
		JWTExpiry:    cfg.JWTExpiryDuration,
		JWTIssuer:    cfg.JWTIssuer,
	})

	return container
}
