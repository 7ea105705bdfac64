package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/accounts-api/internal/core/domain"
)

// ctxAccount extracts the account resolved by the Auth middleware. Its
// absence means the route was wired without the guard; fail closed.
func ctxAccount(c echo.Context) (*domain.Account, error) {
	account, ok := c.Get("account").(*domain.Account)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return account, nil
}

// ctxToken extracts the raw bearer token stashed by the Auth middleware.
func ctxToken(c echo.Context) (string, error) {
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return token, nil
}
