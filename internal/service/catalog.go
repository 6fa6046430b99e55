package service

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"payfast-store-demo/internal/model"
	"payfast-store-demo/internal/repository"
)

type CatalogService interface {
	EnsureSeeded(ctx context.Context)
	ListProducts(ctx context.Context) []*model.Product
	GetProduct(ctx context.Context, key string) (*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
	ping        PingFunc
}

func NewCatalogService(productRepo repository.ProductRepository, ping PingFunc) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		ping:        ping,
	}
}

// EnsureSeeded inserts the sample catalog on first boot. The insert is
// conflict-ignoring, so calling it on every start is harmless.
func (s *catalogServiceImpl) EnsureSeeded(ctx context.Context) {
	if err := s.ping(ctx); err != nil {
		slog.Warn("store unavailable, skipping product seeding", "error", err)
		return
	}
	if err := s.productRepo.Seed(ctx); err != nil {
		slog.Error("seed products", "error", err)
	}
}

// ListProducts never fails: when the store is unreachable the sample
// catalog is served so the storefront keeps rendering.
func (s *catalogServiceImpl) ListProducts(ctx context.Context) []*model.Product {
	if err := s.ping(ctx); err != nil {
		slog.Warn("store unavailable, serving sample products", "error", err)
		return sampleProductList()
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		slog.Error("list products", "error", err)
		return sampleProductList()
	}

	return products
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, key string) (*model.Product, error) {
	if err := s.ping(ctx); err != nil {
		slog.Warn("store unavailable, serving sample product", "error", err)
		return sampleProductByKey(key)
	}

	product, err := s.productRepo.FindByIDOrHandle(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		slog.Error("get product", "error", err, "key", key)
		return sampleProductByKey(key)
	}

	return product, nil
}

func sampleProductList() []*model.Product {
	products := make([]*model.Product, len(repository.SampleProducts))
	for i := range repository.SampleProducts {
		products[i] = &repository.SampleProducts[i]
	}
	return products
}

func sampleProductByKey(key string) (*model.Product, error) {
	for i := range repository.SampleProducts {
		p := &repository.SampleProducts[i]
		if p.ID == key || p.Handle == key {
			return p, nil
		}
	}
	return nil, ErrNotFound
}
