package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kacameta/internal/auth"
)

// PageHandler serves the admin page endpoints the route guard protects.
// Rendering is left to the front end; these return the page identity and,
// when authenticated, the session claims the page was entered with.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func pagePayload(c echo.Context, page string) map[string]interface{} {
	payload := map[string]interface{}{"page": page}
	if claims, ok := auth.ClaimsFrom(c); ok {
		payload["username"] = claims.Username
		payload["role"] = claims.Role
	}
	return payload
}

// Login serves the login page endpoint. The guard redirects authenticated
// admins away before this runs.
func (h *PageHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, pagePayload(c, "login"))
}

// Dashboard serves the admin home.
func (h *PageHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, pagePayload(c, "dashboard"))
}

// Products serves the product management page.
func (h *PageHandler) Products(c echo.Context) error {
	return c.JSON(http.StatusOK, pagePayload(c, "products"))
}

// Categories serves the category management page.
func (h *PageHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, pagePayload(c, "categories"))
}

// ManageAdmins serves the admin-user management page; the guard has already
// required SUPER_ADMIN.
func (h *PageHandler) ManageAdmins(c echo.Context) error {
	return c.JSON(http.StatusOK, pagePayload(c, "manage-admins"))
}
