package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"payfast-store-demo/internal/model"
)

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	product := &model.Product{ID: "1", Handle: "digital-watch", Title: "Nuke NG101 Digital Watch", Price: 295, Image: "/images/g7.png"}

	var tests = []struct {
		name        string
		service     func() CartService
		productID   string
		quantity    int
		expectedErr error
	}{
		{
			name: "store unavailable fails closed",
			service: func() CartService {
				return NewCartService(new(CartRepositoryMock), new(ProductRepositoryMock), downPing)
			},
			productID:   "1",
			quantity:    1,
			expectedErr: ErrStoreUnavailable,
		},
		{
			name: "unknown product",
			service: func() CartService {
				productRepo := new(ProductRepositoryMock)
				productRepo.On("FindByIDOrHandle", ctx, "nope").Return(nil, gorm.ErrRecordNotFound)
				return NewCartService(new(CartRepositoryMock), productRepo, okPing)
			},
			productID:   "nope",
			quantity:    1,
			expectedErr: ErrNotFound,
		},
		{
			name: "new item inserted",
			service: func() CartService {
				productRepo := new(ProductRepositoryMock)
				productRepo.On("FindByIDOrHandle", ctx, "1").Return(product, nil)
				cartRepo := new(CartRepositoryMock)
				cartRepo.On("FindByProductID", ctx, "1").Return(nil, gorm.ErrRecordNotFound)
				cartRepo.On("Insert", ctx, mock.AnythingOfType("*model.CartItem")).Return(nil)
				cartRepo.On("List", ctx).Return([]model.CartItem{{ProductID: "1", Quantity: 1}}, nil)
				return NewCartService(cartRepo, productRepo, okPing)
			},
			productID: "1",
			quantity:  1,
		},
		{
			name: "existing item quantity incremented",
			service: func() CartService {
				productRepo := new(ProductRepositoryMock)
				productRepo.On("FindByIDOrHandle", ctx, "1").Return(product, nil)
				cartRepo := new(CartRepositoryMock)
				cartRepo.On("FindByProductID", ctx, "1").Return(&model.CartItem{ID: "c1", ProductID: "1", Quantity: 1}, nil)
				cartRepo.On("IncrementQuantity", ctx, "1", 2).Return(nil)
				cartRepo.On("List", ctx).Return([]model.CartItem{{ProductID: "1", Quantity: 3}}, nil)
				return NewCartService(cartRepo, productRepo, okPing)
			},
			productID: "1",
			quantity:  2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := tt.service()
			cart, err := svc.AddItem(ctx, tt.productID, tt.quantity)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, cart)
		})
	}
}

func TestCartService_UpdateItem_ZeroQuantityDeletes(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepositoryMock)
	cartRepo.On("Delete", ctx, "c1").Return(nil)
	cartRepo.On("List", ctx).Return([]model.CartItem{}, nil)

	svc := NewCartService(cartRepo, new(ProductRepositoryMock), okPing)

	_, err := svc.UpdateItem(ctx, "c1", 0)
	require.NoError(t, err)

	cartRepo.AssertNotCalled(t, "SetQuantity", mock.Anything, mock.Anything, mock.Anything)
	cartRepo.AssertExpectations(t)
}

func TestCartService_GetCart_DegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	svc := NewCartService(new(CartRepositoryMock), new(ProductRepositoryMock), downPing)
	require.Empty(t, svc.GetCart(ctx))
}
