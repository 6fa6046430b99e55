package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"payfast-store-demo/internal/service"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, h.catalogService.ListProducts(ctx))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.GetProduct(ctx, c.Param("handle"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		c.Logger().Error("fetch product: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch product",
		})
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) SeedProducts(c echo.Context) error {
	ctx := c.Request().Context()
	h.catalogService.EnsureSeeded(ctx)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Products seeded successfully",
	})
}
