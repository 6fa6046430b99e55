package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"payfast-store-demo/internal/model"
)

type NotificationEventRepository interface {
	Exists(ctx context.Context, pfPaymentID string) (bool, error)
	MarkProcessed(ctx context.Context, pfPaymentID, orderID, paymentStatus string) error
}

type notificationEventRepoImpl struct {
	db *gorm.DB
}

func NewNotificationEventRepository(db *gorm.DB) NotificationEventRepository {
	return &notificationEventRepoImpl{db: db}
}

func (r *notificationEventRepoImpl) Exists(ctx context.Context, pfPaymentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.NotificationEvent{}).
		Where("pf_payment_id = ?", pfPaymentID).
		Count(&count).Error

	return count > 0, err
}

func (r *notificationEventRepoImpl) MarkProcessed(ctx context.Context, pfPaymentID, orderID, paymentStatus string) error {
	return r.db.WithContext(ctx).Create(&model.NotificationEvent{
		PFPaymentID:   pfPaymentID,
		OrderID:       orderID,
		PaymentStatus: paymentStatus,
		ProcessedAt:   time.Now(),
	}).Error
}
