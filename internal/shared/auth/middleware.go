package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth.claims"

// RequireRole builds echo middleware that validates the bearer token and
// rejects requests whose claims lack the given role.
func RequireRole(validator TokenValidator, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c.Request(), "token")
			claims, err := validator.Validate(token)
			if err != nil {
				status := http.StatusUnauthorized
				message := "invalid token"
				if errors.Is(err, ErrMissingToken) {
					message = "missing token"
				}
				slog.Warn("auth rejected", slog.String("path", c.Path()), slog.Any("error", err))
				return echo.NewHTTPError(status, message)
			}
			if role != "" && !claims.HasRole(role) {
				slog.Warn("auth forbidden", slog.String("path", c.Path()), slog.String("subject", claims.RegisteredClaims.Subject), slog.String("requiredRole", role))
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the validated claims stored by RequireRole, if any.
func ClaimsFromContext(c echo.Context) *Claims {
	claims, _ := c.Get(claimsContextKey).(*Claims)
	return claims
}
