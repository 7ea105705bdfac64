package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/accounts-api/internal/core/domain"
)

// RequireAdmin gates admin-only routes. It runs after Auth, so a missing
// account means the guard was skipped; fail closed with 403.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := c.Get("account").(*domain.Account)
			if !ok || !account.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}
