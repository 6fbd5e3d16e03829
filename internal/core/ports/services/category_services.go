package services

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/dto"
)

// CategoryReaderSvc defines read operations for categories
type CategoryReaderSvc interface {
	// ListCategories returns built-in categories followed by custom ones.
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*domain.Category, error)
}

// CategoryWriterSvc defines write operations for categories
type CategoryWriterSvc interface {
	CreateCustomCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	DeleteCustomCategory(ctx context.Context, categoryID string) error
}

// CategorySvcFacade combines all category service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
