package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payfast-store-demo/internal/model"
	"payfast-store-demo/internal/repository"
)

type OrderRepositoryMock struct {
	mock.Mock
	repository.OrderRepository
}

func (m *OrderRepositoryMock) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepositoryMock) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *OrderRepositoryMock) List(ctx context.Context) ([]*model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

func (m *OrderRepositoryMock) MarkPaid(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepositoryMock) MarkFailed(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepositoryMock) RecordGatewayResult(ctx context.Context, orderID, paymentStatus, pfPaymentID string) error {
	args := m.Called(ctx, orderID, paymentStatus, pfPaymentID)
	return args.Error(0)
}

type CartRepositoryMock struct {
	mock.Mock
	repository.CartRepository
}

func (m *CartRepositoryMock) List(ctx context.Context) ([]model.CartItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *CartRepositoryMock) FindByProductID(ctx context.Context, productID string) (*model.CartItem, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *CartRepositoryMock) Insert(ctx context.Context, item *model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartRepositoryMock) IncrementQuantity(ctx context.Context, productID string, by int) error {
	args := m.Called(ctx, productID, by)
	return args.Error(0)
}

func (m *CartRepositoryMock) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

func (m *CartRepositoryMock) Delete(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *CartRepositoryMock) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type ProductRepositoryMock struct {
	mock.Mock
	repository.ProductRepository
}

func (m *ProductRepositoryMock) Seed(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ProductRepositoryMock) FindAll(ctx context.Context) ([]*model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Product), args.Error(1)
}

func (m *ProductRepositoryMock) FindByIDOrHandle(ctx context.Context, key string) (*model.Product, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

type NotificationEventRepositoryMock struct {
	mock.Mock
	repository.NotificationEventRepository
}

func (m *NotificationEventRepositoryMock) Exists(ctx context.Context, pfPaymentID string) (bool, error) {
	args := m.Called(ctx, pfPaymentID)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationEventRepositoryMock) MarkProcessed(ctx context.Context, pfPaymentID, orderID, paymentStatus string) error {
	args := m.Called(ctx, pfPaymentID, orderID, paymentStatus)
	return args.Error(0)
}

type EmailSenderMock struct {
	mock.Mock
}

func (m *EmailSenderMock) Send(recipientName, recipientEmail, subject, htmlBody string) error {
	args := m.Called(recipientName, recipientEmail, subject, htmlBody)
	return args.Error(0)
}

func okPing(context.Context) error { return nil }

func downPing(context.Context) error { return context.DeadlineExceeded }
