package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"kacameta/internal/model"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "kacameta_session"

// claimsContextKey is where the page guard stashes decoded claims.
const claimsContextKey = "session_claims"

// ClaimsFrom extracts the session claims threaded through the request
// context, whether they were put there by the page guard or by the echo-jwt
// middleware protecting the JSON API.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	if claims, ok := c.Get(claimsContextKey).(*Claims); ok {
		return claims, true
	}
	if token, ok := c.Get("user").(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return claims, true
		}
	}
	return nil, false
}

// PageGuard intercepts admin page requests and enforces the access policy
// with redirects. Any token decode failure is treated as "no session".
func PageGuard(jwtService *JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var claims *Claims
			if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				claims, _ = jwtService.Verify(cookie.Value)
			}

			verdict := Decide(c.Request().URL.Path, claims)
			if verdict.Action == ActionRedirect {
				return c.Redirect(http.StatusFound, verdict.Location)
			}

			if claims != nil {
				c.Set(claimsContextKey, claims)
			}
			return next(c)
		}
	}
}

// RequireRole guards JSON API routes. It expects authentication middleware
// to have run already and answers with 401/403 rather than redirects.
// Handlers behind it still re-check the role for their own mutations.
func RequireRole(required model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !claims.Role.HasAtLeast(required) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
