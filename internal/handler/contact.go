package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"payfast-store-demo/internal/dto"
	"payfast-store-demo/internal/service"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if err := h.contactService.Submit(ctx, &req); err != nil {
		if errors.Is(err, service.ErrInvalidContact) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   err.Error(),
			})
		}
		c.Logger().Error("contact form: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to send email. Please try again later.",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Thank you for your message! We will get back to you soon.",
	})
}
