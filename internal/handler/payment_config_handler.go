package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeshot-backend/internal/payment"
)

type PaymentConfigHandler struct {
	provider *payment.Provider
}

func NewPaymentConfigHandler(provider *payment.Provider) *PaymentConfigHandler {
	return &PaymentConfigHandler{provider: provider}
}

// Get exposes the widget parameters the frontend needs. The Gemini key is
// never part of this payload.
func (h *PaymentConfigHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.provider.ClientConfig())
}
