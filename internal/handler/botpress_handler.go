package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"kacameta/internal/service"
)

// BotpressHandler receives chat-widget webhook events.
type BotpressHandler struct {
	botpressService service.BotpressService
}

// NewBotpressHandler creates a new Botpress webhook handler.
func NewBotpressHandler(botpressService service.BotpressService) *BotpressHandler {
	return &BotpressHandler{botpressService: botpressService}
}

// Webhook godoc
// @Summary Botpress webhook receiver
// @Tags chat
// @Accept json
// @Produce json
// @Param request body service.WebhookEvent true "Webhook event"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /botpress/webhook [post]
func (h *BotpressHandler) Webhook(c echo.Context) error {
	var event service.WebhookEvent
	if err := c.Bind(&event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid webhook payload")
	}

	if err := h.botpressService.HandleEvent(c.Request().Context(), event); err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("botpress webhook failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
