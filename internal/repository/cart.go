package repository

import (
	"context"

	"gorm.io/gorm"

	"payfast-store-demo/internal/model"
)

type CartRepository interface {
	List(ctx context.Context) ([]model.CartItem, error)
	FindByProductID(ctx context.Context, productID string) (*model.CartItem, error)
	Insert(ctx context.Context, item *model.CartItem) error
	IncrementQuantity(ctx context.Context, productID string, by int) error
	SetQuantity(ctx context.Context, itemID string, quantity int) error
	Delete(ctx context.Context, itemID string) error
	Clear(ctx context.Context) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{db: db}
}

func (r *cartRepoImpl) List(ctx context.Context) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) FindByProductID(ctx context.Context, productID string) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&item).Error

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *cartRepoImpl) Insert(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) IncrementQuantity(ctx context.Context, productID string, by int) error {
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("product_id = ?", productID).
		Update("quantity", gorm.Expr("quantity + ?", by)).Error
}

func (r *cartRepoImpl) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *cartRepoImpl) Delete(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.CartItem{}).Error
}

func (r *cartRepoImpl) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.CartItem{}).Error
}
