package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"payfast-store-demo/internal/dto"
	"payfast-store-demo/internal/model"
	"payfast-store-demo/internal/service"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, h.cartService.GetCart(ctx))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddItem(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return cartError(c, err, "Failed to add item to cart")
	}

	return c.JSON(http.StatusOK, &dto.CartResponse{Success: true, Cart: cart})
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	cart, err := h.cartService.UpdateItem(ctx, c.Param("itemID"), req.Quantity)
	if err != nil {
		return cartError(c, err, "Failed to update cart item")
	}

	return c.JSON(http.StatusOK, &dto.CartResponse{Success: true, Cart: cart})
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartService.RemoveItem(ctx, c.Param("itemID"))
	if err != nil {
		return cartError(c, err, "Failed to remove item from cart")
	}

	return c.JSON(http.StatusOK, &dto.CartResponse{Success: true, Cart: cart})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cartService.Clear(ctx); err != nil {
		return cartError(c, err, "Failed to clear cart")
	}

	return c.JSON(http.StatusOK, &dto.CartResponse{Success: true, Cart: []model.CartItem{}})
}

func cartError(c echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, service.ErrStoreUnavailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Database not available"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	default:
		c.Logger().Error(message, ": ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": message})
	}
}
