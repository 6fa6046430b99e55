package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"payfast-store-demo/internal/client"
	"payfast-store-demo/internal/config"
	"payfast-store-demo/internal/dto"
	"payfast-store-demo/internal/model"
	"payfast-store-demo/internal/payfast"
	"payfast-store-demo/internal/repository"
)

type PaymentService interface {
	InitiateCheckout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, fields map[string]string) error
	GetOrderStatus(ctx context.Context, orderID string) (*dto.OrderStatus, error)
}

type paymentServiceImpl struct {
	cfg         config.Payfast
	builder     *payfast.Builder
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	eventRepo   repository.NotificationEventRepository
	emailSender client.EmailSender
}

func NewPaymentService(
	cfg config.Payfast,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	eventRepo repository.NotificationEventRepository,
	emailSender client.EmailSender,
) PaymentService {
	return &paymentServiceImpl{
		cfg:         cfg,
		builder:     payfast.NewBuilder(cfg),
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		eventRepo:   eventRepo,
		emailSender: emailSender,
	}
}

func (s *paymentServiceImpl) InitiateCheckout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	orderID := uuid.NewString()

	items := make([]payfast.LineItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = payfast.LineItem{
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	customer := payfast.Customer{
		FirstName: req.CustomerInfo.FirstName,
		LastName:  req.CustomerInfo.LastName,
		Email:     req.CustomerInfo.Email,
		Phone:     req.CustomerInfo.Phone,
	}

	// Validates and signs before anything is persisted.
	payment, err := s.builder.Build(orderID, customer, items, req.Total)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:       orderID,
		Status:   model.OrderStatusPending,
		Total:    req.Total,
		Customer: req.CustomerInfo,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, model.OrderItem{
			OrderID:  orderID,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	return &dto.CheckoutResponse{
		Success:     true,
		PaymentData: payment.Data,
		RedirectURL: payment.RedirectURL,
		OrderID:     orderID,
	}, nil
}

// HandleNotification processes a gateway ITN callback. The signature is
// popped off the payload before verification; the serializer restricts
// itself to the canonical field order, so the gateway-added fields in
// the callback never feed the digest. A valid duplicate of an already
// processed notification is acknowledged without side effects.
func (s *paymentServiceImpl) HandleNotification(ctx context.Context, fields map[string]string) error {
	data := make(map[string]string, len(fields))
	for k, v := range fields {
		data[k] = v
	}
	claimed := data[payfast.FieldSignature]
	delete(data, payfast.FieldSignature)

	if !payfast.Verify(data, claimed, s.cfg.Passphrase) {
		slog.Warn("itn signature mismatch",
			"claimed", claimed,
			"payload", data,
		)
		return ErrSignatureMismatch
	}

	orderID := data[payfast.FieldMPaymentID]
	pfPaymentID := data[payfast.FieldPFPaymentID]
	paymentStatus := data[payfast.FieldPaymentStatus]

	slog.Info("itn received",
		"order_id", orderID,
		"pf_payment_id", pfPaymentID,
		"payment_status", paymentStatus,
	)

	if pfPaymentID != "" {
		seen, err := s.eventRepo.Exists(ctx, pfPaymentID)
		if err != nil {
			return fmt.Errorf("check notification event: %w", err)
		}
		if seen {
			slog.Info("itn already processed", "pf_payment_id", pfPaymentID)
			return nil
		}
	}

	switch paymentStatus {
	case model.PaymentStatusComplete:
		transitioned, err := s.orderRepo.MarkPaid(ctx, orderID)
		if err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}
		if transitioned {
			s.onOrderPaid(ctx, orderID)
		}
	case model.PaymentStatusFailed:
		if _, err := s.orderRepo.MarkFailed(ctx, orderID); err != nil {
			return fmt.Errorf("mark order failed: %w", err)
		}
	}

	// The raw gateway outcome is recorded for every valid notification,
	// whatever the status and whether or not the order id is known.
	if err := s.orderRepo.RecordGatewayResult(ctx, orderID, paymentStatus, pfPaymentID); err != nil {
		return fmt.Errorf("record gateway result: %w", err)
	}

	if pfPaymentID != "" {
		if err := s.eventRepo.MarkProcessed(ctx, pfPaymentID, orderID, paymentStatus); err != nil {
			slog.Error("mark notification processed", "error", err, "pf_payment_id", pfPaymentID)
		}
	}

	return nil
}

// onOrderPaid runs the first-transition side effects: cart cleanup and
// the confirmation mail. Failures here are logged and swallowed; the
// gateway must still get its OK or it retries the notification forever.
func (s *paymentServiceImpl) onOrderPaid(ctx context.Context, orderID string) {
	if err := s.cartRepo.Clear(ctx); err != nil {
		slog.Error("clear cart after payment", "error", err, "order_id", orderID)
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		slog.Warn("paid order not found for confirmation email", "order_id", orderID, "error", err)
		return
	}

	go func() {
		name := order.Customer.FirstName + " " + order.Customer.LastName
		subject := fmt.Sprintf("New Paid Order: %s", order.ID)
		if err := s.emailSender.Send(name, order.Customer.Email, subject, orderConfirmationBody(order)); err != nil {
			slog.Error("send order confirmation email", "error", err, "order_id", order.ID)
			return
		}
		slog.Info("order confirmation email sent", "order_id", order.ID)
	}()
}

func orderConfirmationBody(order *model.Order) string {
	var items strings.Builder
	for _, item := range order.Items {
		items.WriteString(fmt.Sprintf("<li>%s (x%d) - R%.2f</li>", item.Title, item.Quantity, item.Price))
	}

	c := order.Customer
	return fmt.Sprintf(`
		<h2>New Paid Order Received</h2>
		<p><strong>Order ID:</strong> %s</p>
		<p><strong>Customer:</strong> %s %s (%s)</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Address:</strong> %s, %s, %s, %s</p>
		<p><strong>Total:</strong> R%.2f</p>
		<p><strong>Items:</strong></p>
		<ul>%s</ul>
		<hr>
		<p><em>Sent automatically from the store backend (payment successful)</em></p>
	`, order.ID, c.FirstName, c.LastName, c.Email, c.Phone,
		c.Address, c.City, c.Province, c.PostalCode,
		order.Total, items.String())
}

func (s *paymentServiceImpl) GetOrderStatus(ctx context.Context, orderID string) (*dto.OrderStatus, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	return &dto.OrderStatus{
		ID:            order.ID,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		Total:         order.Total,
		CustomerInfo:  order.Customer,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}, nil
}
