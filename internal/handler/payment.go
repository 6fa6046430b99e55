package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"payfast-store-demo/internal/dto"
	"payfast-store-demo/internal/payfast"
	"payfast-store-demo/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) InitiateCheckout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Missing required payment information",
		})
	}

	resp, err := h.paymentService.InitiateCheckout(ctx, &req)
	if err != nil {
		if errors.Is(err, payfast.ErrInvalidOrder) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Missing required payment information",
			})
		}
		c.Logger().Error("initiate payment: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to initiate payment",
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// Notify is the gateway's ITN endpoint. The body is form-encoded; the
// gateway treats anything but a 200 as a signal to retry, so only
// signature mismatches get a 400.
func (h *PaymentHandler) Notify(c echo.Context) error {
	ctx := c.Request().Context()

	params, err := c.FormParams()
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid notification body")
	}

	fields := make(map[string]string, len(params))
	for key, values := range params {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	if err := h.paymentService.HandleNotification(ctx, fields); err != nil {
		if errors.Is(err, service.ErrSignatureMismatch) {
			return c.String(http.StatusBadRequest, "Invalid signature")
		}
		c.Logger().Error("process notification: ", err)
		return c.String(http.StatusInternalServerError, "Error processing notification")
	}

	return c.String(http.StatusOK, "OK")
}

func (h *PaymentHandler) GetStatus(c echo.Context) error {
	ctx := c.Request().Context()
	orderID := c.Param("orderID")

	order, err := h.paymentService.GetOrderStatus(ctx, orderID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		c.Logger().Error("fetch payment status: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch payment status",
		})
	}

	return c.JSON(http.StatusOK, &dto.OrderStatusResponse{
		Success: true,
		Order:   order,
	})
}
