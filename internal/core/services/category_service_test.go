package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/core/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_ListStartsWithBuiltins(t *testing.T) {
	svc := services.NewCategoryService(memory.NewKVRepository())

	categories, err := svc.ListCategories(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, categories)
	assert.Equal(t, "food", categories[0].ID)
	for _, c := range categories {
		assert.False(t, c.IsCustom, c.ID)
	}
}

func TestCategoryService_CreateCustom(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVRepository()
	svc := services.NewCategoryService(kv)

	created, err := svc.CreateCustomCategory(ctx, dto.CreateCategoryRequest{Name: "  Pets ", Color: "#123456"})

	require.NoError(t, err)
	assert.Equal(t, "Pets", created.Name)
	assert.True(t, created.IsCustom)
	assert.Equal(t, "#123456", created.Color)
	assert.NotEmpty(t, created.Emoji)
	assert.NotEmpty(t, created.ID)

	// A fresh service over the same store sees it.
	reloaded, err := services.NewCategoryService(kv).GetCategory(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *reloaded)
}

func TestCategoryService_CreateDuplicateIgnoresCase(t *testing.T) {
	ctx := context.Background()
	svc := services.NewCategoryService(memory.NewKVRepository())

	_, err := svc.CreateCustomCategory(ctx, dto.CreateCategoryRequest{Name: "food"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = svc.CreateCustomCategory(ctx, dto.CreateCategoryRequest{Name: "Gym"})
	require.NoError(t, err)
	_, err = svc.CreateCustomCategory(ctx, dto.CreateCategoryRequest{Name: "GYM"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestCategoryService_CreateBlankName(t *testing.T) {
	svc := services.NewCategoryService(memory.NewKVRepository())

	_, err := svc.CreateCustomCategory(context.Background(), dto.CreateCategoryRequest{Name: "   "})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := services.NewCategoryService(memory.NewKVRepository())
	created, err := svc.CreateCustomCategory(ctx, dto.CreateCategoryRequest{Name: "Gifts"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomCategory(ctx, created.ID))

	_, err = svc.GetCategory(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteCustomCategory(ctx, created.ID), apperrors.ErrNotFound)
}

func TestCategoryService_DeleteBuiltinRejected(t *testing.T) {
	svc := services.NewCategoryService(memory.NewKVRepository())

	err := svc.DeleteCustomCategory(context.Background(), "food")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCategoryService_StorageFailure(t *testing.T) {
	ctx := context.Background()
	kv := new(MockKeyValueStore)
	kv.On("Load", ctx, portsrepo.KeyCustomCategories).Return(nil, errors.New("disk gone"))
	svc := services.NewCategoryService(kv)

	_, err := svc.ListCategories(ctx)

	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	kv.AssertExpectations(t)
}
