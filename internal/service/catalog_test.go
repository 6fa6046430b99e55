package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"payfast-store-demo/internal/model"
	"payfast-store-demo/internal/repository"
)

func TestCatalogService_ListProducts_FallsBackToSamples(t *testing.T) {
	ctx := context.Background()

	t.Run("store unavailable", func(t *testing.T) {
		svc := NewCatalogService(new(ProductRepositoryMock), downPing)
		products := svc.ListProducts(ctx)
		require.Len(t, products, len(repository.SampleProducts))
	})

	t.Run("query failure", func(t *testing.T) {
		productRepo := new(ProductRepositoryMock)
		productRepo.On("FindAll", ctx).Return(nil, gorm.ErrInvalidDB)
		svc := NewCatalogService(productRepo, okPing)

		products := svc.ListProducts(ctx)
		require.Len(t, products, len(repository.SampleProducts))
	})

	t.Run("store healthy", func(t *testing.T) {
		stored := []*model.Product{{ID: "9", Handle: "strap", Title: "Replacement Strap", Price: 45}}
		productRepo := new(ProductRepositoryMock)
		productRepo.On("FindAll", ctx).Return(stored, nil)
		svc := NewCatalogService(productRepo, okPing)

		require.Equal(t, stored, svc.ListProducts(ctx))
	})
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("by handle from store", func(t *testing.T) {
		want := &model.Product{ID: "1", Handle: "digital-watch"}
		productRepo := new(ProductRepositoryMock)
		productRepo.On("FindByIDOrHandle", ctx, "digital-watch").Return(want, nil)
		svc := NewCatalogService(productRepo, okPing)

		got, err := svc.GetProduct(ctx, "digital-watch")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("unknown key", func(t *testing.T) {
		productRepo := new(ProductRepositoryMock)
		productRepo.On("FindByIDOrHandle", ctx, "nope").Return(nil, gorm.ErrRecordNotFound)
		svc := NewCatalogService(productRepo, okPing)

		_, err := svc.GetProduct(ctx, "nope")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("sample fallback when store is down", func(t *testing.T) {
		svc := NewCatalogService(new(ProductRepositoryMock), downPing)

		got, err := svc.GetProduct(ctx, "digital-watch")
		require.NoError(t, err)
		require.Equal(t, "1", got.ID)

		_, err = svc.GetProduct(ctx, "nope")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
