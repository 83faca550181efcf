package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"kacameta/internal/errors"
	"kacameta/internal/service"
)

// StatsHandler handles dashboard statistics.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard godoc
// @Summary Dashboard statistics
// @Tags stats
// @Produce json
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.statsService.Dashboard(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("dashboard stats failed")
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to fetch statistics",
			Code:  "INTERNAL_ERROR",
		})
	}
	return c.JSON(http.StatusOK, stats)
}
