package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/accounts-api/internal/core/domain"
	"github.com/learnhub/accounts-api/internal/core/ports"
)

// BearerToken extracts the token from the standard Authorization header.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

// Auth is the session guard: it verifies the bearer token and resolves the
// account it names, then injects both into the request context. An account
// soft-deleted after issuance fails resolution and is rejected like any other
// invalid token.
func Auth(tokens ports.TokenService, accounts ports.AccountRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := BearerToken(c.Request())
			if err != nil {
				return err
			}

			// Token failures map to 401 centrally; infra errors stay 500.
			claims, err := tokens.Verify(c.Request().Context(), raw)
			if err != nil {
				return err
			}

			account, err := accounts.FindActiveByID(c.Request().Context(), claims.AccountID)
			if errors.Is(err, domain.ErrAccountNotFound) {
				// Deleted or vanished since issuance; the token no longer
				// names anyone who may act.
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if err != nil {
				return err
			}

			c.Set("account", account)
			c.Set("token", raw)

			return next(c)
		}
	}
}
