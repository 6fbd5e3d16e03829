package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
	"github.com/google/uuid"
)

const (
	defaultCategoryEmoji = "🏷️"
	defaultCategoryColor = "#9E9E9E"
)

// builtinCategories ship with the app, in the order used to backfill rankings.
var builtinCategories = []domain.Category{
	{ID: "food", Name: "Food", Emoji: "🍔", Color: "#FF7043"},
	{ID: "transport", Name: "Transport", Emoji: "🚌", Color: "#42A5F5"},
	{ID: "home", Name: "Home", Emoji: "🏠", Color: "#8D6E63"},
	{ID: "health", Name: "Health", Emoji: "💊", Color: "#EF5350"},
	{ID: "fun", Name: "Fun", Emoji: "🎉", Color: "#AB47BC"},
	{ID: "shopping", Name: "Shopping", Emoji: "🛍️", Color: "#EC407A"},
	{ID: "bills", Name: "Bills", Emoji: "🧾", Color: "#78909C"},
	{ID: "education", Name: "Education", Emoji: "📚", Color: "#5C6BC0"},
	{ID: "salary", Name: "Salary", Emoji: "💼", Color: "#66BB6A"},
	{ID: "other", Name: "Other", Emoji: "📦", Color: defaultCategoryColor},
}

// categoryService serves built-in categories and persists custom ones.
type categoryService struct {
	BaseService
	kv portsrepo.KeyValueStore
	mu sync.Mutex
}

// NewCategoryService creates a category service backed by kv.
func NewCategoryService(kv portsrepo.KeyValueStore) portssvc.CategorySvcFacade {
	return &categoryService{kv: kv}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) loadCustom(ctx context.Context) ([]domain.Category, error) {
	raw, err := s.kv.Load(ctx, portsrepo.KeyCustomCategories)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Category{}, nil
		}
		s.LogError(ctx, err, "Failed to load custom categories")
		return nil, fmt.Errorf("%w: failed to load custom categories: %w", apperrors.ErrStorageUnavailable, err)
	}
	custom, err := mapping.DecodeCustomCategories(raw)
	if err != nil {
		s.LogError(ctx, err, "Stored custom categories are unreadable")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStorageUnavailable, err)
	}
	return custom, nil
}

func (s *categoryService) saveCustom(ctx context.Context, custom []domain.Category) error {
	raw, err := mapping.EncodeCustomCategories(custom, s.Now())
	if err != nil {
		return fmt.Errorf("failed to encode custom categories: %w", err)
	}
	if err := s.kv.Save(ctx, portsrepo.KeyCustomCategories, raw); err != nil {
		s.LogError(ctx, err, "Failed to persist custom categories")
		return fmt.Errorf("%w: failed to save custom categories: %w", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

func isBuiltinCategory(id string) bool {
	for _, c := range builtinCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	custom, err := s.loadCustom(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(builtinCategories)+len(custom))
	out = append(out, builtinCategories...)
	return append(out, custom...), nil
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	all, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		if c.ID == categoryID {
			found := c
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
}

// CreateCustomCategory stores a new category. Names are unique, ignoring case.
func (s *categoryService) CreateCustomCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	custom, err := s.loadCustom(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range append(append([]domain.Category{}, builtinCategories...), custom...) {
		if strings.EqualFold(c.Name, name) {
			return nil, fmt.Errorf("%w: category %q", apperrors.ErrDuplicate, name)
		}
	}

	category := domain.Category{
		ID:       uuid.NewString(),
		Name:     name,
		Emoji:    req.Emoji,
		Color:    req.Color,
		IsCustom: true,
	}
	if category.Emoji == "" {
		category.Emoji = defaultCategoryEmoji
	}
	if category.Color == "" {
		category.Color = defaultCategoryColor
	}

	if err := s.saveCustom(ctx, append(custom, category)); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Custom category created", slog.String("category_id", category.ID), slog.String("name", name))
	return &category, nil
}

// DeleteCustomCategory removes a custom category. Transactions keep their category
// id and simply stop appearing in per-category reports.
func (s *categoryService) DeleteCustomCategory(ctx context.Context, categoryID string) error {
	if isBuiltinCategory(categoryID) {
		return fmt.Errorf("%w: built-in category %s cannot be deleted", apperrors.ErrValidation, categoryID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	custom, err := s.loadCustom(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.Category, 0, len(custom))
	for _, c := range custom {
		if c.ID != categoryID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(custom) {
		return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
	}

	if err := s.saveCustom(ctx, kept); err != nil {
		return err
	}
	s.LogInfo(ctx, "Custom category deleted", slog.String("category_id", categoryID))
	return nil
}
