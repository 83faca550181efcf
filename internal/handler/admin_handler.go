package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"kacameta/internal/auth"
	"kacameta/internal/errors"
	"kacameta/internal/model"
	"kacameta/internal/service"
)

// AdminHandler handles admin-account management endpoints. Every endpoint
// re-checks for SUPER_ADMIN even though the route group is already gated.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin management handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateAdminRequest represents a new admin account.
type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN SUPER_ADMIN"`
}

// UpdateAdminRequest represents an admin account update.
type UpdateAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN SUPER_ADMIN"`
}

func requireSuperAdmin(c echo.Context) (*auth.Claims, error) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if !claims.Role.HasAtLeast(model.RoleSuperAdmin) {
		return nil, echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
			Error: "super admin access required",
			Code:  "SUPER_ADMIN_REQUIRED",
		})
	}
	return claims, nil
}

// List godoc
// @Summary List admin accounts
// @Tags admins
// @Produce json
// @Success 200 {array} model.Admin
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admins [get]
func (h *AdminHandler) List(c echo.Context) error {
	if _, err := requireSuperAdmin(c); err != nil {
		return err
	}

	admins, err := h.adminService.List(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("list admins failed")
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, admins)
}

// Create godoc
// @Summary Create an admin account
// @Tags admins
// @Accept json
// @Produce json
// @Param request body CreateAdminRequest true "Admin data"
// @Success 201 {object} model.Admin
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admins [post]
func (h *AdminHandler) Create(c echo.Context) error {
	if _, err := requireSuperAdmin(c); err != nil {
		return err
	}

	var req CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	admin, err := h.adminService.Create(c.Request().Context(), service.CreateAdminInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			log.Error().Err(err).Msg("create admin failed")
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, admin)
}

// Update godoc
// @Summary Update an admin account
// @Tags admins
// @Accept json
// @Produce json
// @Param id path int true "Admin ID"
// @Param request body UpdateAdminRequest true "Admin data"
// @Success 200 {object} model.Admin
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admins/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	if _, err := requireSuperAdmin(c); err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	admin, err := h.adminService.Update(c.Request().Context(), uint(id), service.UpdateAdminInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			log.Error().Err(err).Msg("update admin failed")
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, admin)
}

// Delete godoc
// @Summary Delete an admin account
// @Tags admins
// @Produce json
// @Param id path int true "Admin ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admins/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	claims, err := requireSuperAdmin(c)
	if err != nil {
		return err
	}

	id, convErr := strconv.Atoi(c.Param("id"))
	if convErr != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.adminService.Delete(c.Request().Context(), uint(id), claims.AdminID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			log.Error().Err(err).Msg("delete admin failed")
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "admin deleted successfully",
	})
}
