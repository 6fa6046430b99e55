package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"payfast-store-demo/internal/dto"
	"payfast-store-demo/internal/model"
	"payfast-store-demo/internal/repository"
)

type OrderService interface {
	ListOrders(ctx context.Context) ([]*model.Order, error)
	CreateOrder(ctx context.Context, req *dto.CheckoutRequest) (*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
	}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]*model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

// CreateOrder records an order placed outside the gateway flow and
// empties the cart, matching the storefront's direct-order endpoint.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *dto.CheckoutRequest) (*model.Order, error) {
	order := &model.Order{
		ID:       uuid.NewString(),
		Status:   model.OrderStatusPending,
		Total:    req.Total,
		Customer: req.CustomerInfo,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, model.OrderItem{
			OrderID:  order.ID,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	if err := s.cartRepo.Clear(ctx); err != nil {
		slog.Error("clear cart after order", "error", err, "order_id", order.ID)
	}

	return order, nil
}
