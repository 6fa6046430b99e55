package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"payfast-store-demo/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID string) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)

	// MarkPaid / MarkFailed transition pending orders only and report
	// whether this call performed the transition. paid and failed are
	// terminal, so a retried notification is a no-op here.
	MarkPaid(ctx context.Context, orderID string) (bool, error)
	MarkFailed(ctx context.Context, orderID string) (bool, error)

	// RecordGatewayResult stores the raw gateway payment status and
	// gateway payment id. It is a plain set: safe to repeat and safe to
	// target an order id we never issued.
	RecordGatewayResult(ctx context.Context, orderID, paymentStatus, pfPaymentID string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) List(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) MarkPaid(ctx context.Context, orderID string) (bool, error) {
	return r.transition(ctx, orderID, model.OrderStatusPaid)
}

func (r *orderRepoImpl) MarkFailed(ctx context.Context, orderID string) (bool, error) {
	return r.transition(ctx, orderID, model.OrderStatusFailed)
}

func (r *orderRepoImpl) transition(ctx context.Context, orderID, status string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, model.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *orderRepoImpl) RecordGatewayResult(ctx context.Context, orderID, paymentStatus, pfPaymentID string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_status": paymentStatus,
			"payment_id":     pfPaymentID,
			"updated_at":     time.Now(),
		}).Error
}
