package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"payfast-store-demo/internal/model"
	"payfast-store-demo/internal/repository"
)

type CartService interface {
	GetCart(ctx context.Context) []model.CartItem
	AddItem(ctx context.Context, productID string, quantity int) ([]model.CartItem, error)
	UpdateItem(ctx context.Context, itemID string, quantity int) ([]model.CartItem, error)
	RemoveItem(ctx context.Context, itemID string) ([]model.CartItem, error)
	Clear(ctx context.Context) error
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	ping        PingFunc
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, ping PingFunc) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		ping:        ping,
	}
}

// GetCart degrades to an empty cart when the store is down so the
// storefront keeps rendering.
func (s *cartServiceImpl) GetCart(ctx context.Context) []model.CartItem {
	if err := s.ping(ctx); err != nil {
		slog.Warn("store unavailable, returning empty cart", "error", err)
		return []model.CartItem{}
	}

	items, err := s.cartRepo.List(ctx)
	if err != nil {
		slog.Error("list cart", "error", err)
		return []model.CartItem{}
	}

	return items
}

func (s *cartServiceImpl) AddItem(ctx context.Context, productID string, quantity int) ([]model.CartItem, error) {
	if err := s.ping(ctx); err != nil {
		return nil, ErrStoreUnavailable
	}

	product, err := s.productRepo.FindByIDOrHandle(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	_, err = s.cartRepo.FindByProductID(ctx, product.ID)
	switch {
	case err == nil:
		if err := s.cartRepo.IncrementQuantity(ctx, product.ID, quantity); err != nil {
			return nil, fmt.Errorf("increment cart item: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := &model.CartItem{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		}
		if err := s.cartRepo.Insert(ctx, item); err != nil {
			return nil, fmt.Errorf("insert cart item: %w", err)
		}
	default:
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	return s.cartRepo.List(ctx)
}

func (s *cartServiceImpl) UpdateItem(ctx context.Context, itemID string, quantity int) ([]model.CartItem, error) {
	if err := s.ping(ctx); err != nil {
		return nil, ErrStoreUnavailable
	}

	if quantity <= 0 {
		if err := s.cartRepo.Delete(ctx, itemID); err != nil {
			return nil, fmt.Errorf("delete cart item: %w", err)
		}
	} else {
		if err := s.cartRepo.SetQuantity(ctx, itemID, quantity); err != nil {
			return nil, fmt.Errorf("update cart item: %w", err)
		}
	}

	return s.cartRepo.List(ctx)
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, itemID string) ([]model.CartItem, error) {
	if err := s.ping(ctx); err != nil {
		return nil, ErrStoreUnavailable
	}

	if err := s.cartRepo.Delete(ctx, itemID); err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}

	return s.cartRepo.List(ctx)
}

func (s *cartServiceImpl) Clear(ctx context.Context) error {
	if err := s.ping(ctx); err != nil {
		return ErrStoreUnavailable
	}

	return s.cartRepo.Clear(ctx)
}
