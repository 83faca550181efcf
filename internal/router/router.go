package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"kacameta/internal/auth"
	"kacameta/internal/config"
	"kacameta/internal/handler"
	"kacameta/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
	statsHandler *handler.StatsHandler,
	botpressHandler *handler.BotpressHandler,
	configHandler *handler.ConfigHandler,
	pageHandler *handler.PageHandler,
) {
	e.Use(middleware.Recover())
	e.Use(RequestLogger())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes: catalog reads, chat integration, login.
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/categories", categoryHandler.List)
	api.GET("/whatsapp-config", configHandler.WhatsAppConfig)
	api.POST("/botpress/webhook", botpressHandler.Webhook)

	// Secured routes: the session token travels in an HTTP-only cookie for
	// the back office UI, or a bearer header for API clients.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  jwtService.Secret(),
		TokenLookup: "cookie:" + auth.SessionCookieName + ",header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/auth/me", authHandler.Me)

	// Mutations require at least ADMIN; handlers re-check roles themselves.
	adminAPI := secured.Group("", auth.RequireRole(model.RoleAdmin))
	adminAPI.POST("/products", productHandler.Create)
	adminAPI.PUT("/products/:id", productHandler.Update)
	adminAPI.DELETE("/products/:id", productHandler.Delete)
	adminAPI.POST("/categories", categoryHandler.Create)
	adminAPI.PUT("/categories/:id", categoryHandler.Update)
	adminAPI.DELETE("/categories/:id", categoryHandler.Delete)
	adminAPI.GET("/admin/stats", statsHandler.Dashboard)

	// Admin-account management is SUPER_ADMIN territory.
	superAPI := secured.Group("", auth.RequireRole(model.RoleSuperAdmin))
	superAPI.GET("/admins", adminHandler.List)
	superAPI.POST("/admins", adminHandler.Create)
	superAPI.PUT("/admins/:id", adminHandler.Update)
	superAPI.DELETE("/admins/:id", adminHandler.Delete)

	// Admin pages sit behind the redirecting route guard.
	pages := e.Group("", auth.PageGuard(jwtService))
	pages.GET(auth.AdminHomePath, pageHandler.Dashboard)
	pages.GET(auth.AdminLoginPath, pageHandler.Login)
	pages.GET("/admin/products", pageHandler.Products)
	pages.GET("/admin/categories", pageHandler.Categories)
	pages.GET("/admin/manage-admins", pageHandler.ManageAdmins)
}

// RequestLogger emits one structured log line per request.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			event := log.Info()
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			}

			event.
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Msg("request")

			return nil
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
