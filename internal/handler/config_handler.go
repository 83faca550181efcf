package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ConfigHandler exposes public client configuration.
type ConfigHandler struct {
	whatsAppNumber string
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(whatsAppNumber string) *ConfigHandler {
	return &ConfigHandler{whatsAppNumber: whatsAppNumber}
}

// WhatsAppConfig godoc
// @Summary WhatsApp fallback number for the chat widget
// @Tags chat
// @Produce json
// @Success 200 {object} map[string]string
// @Router /whatsapp-config [get]
func (h *ConfigHandler) WhatsAppConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"whatsappNumber": h.whatsAppNumber,
	})
}
