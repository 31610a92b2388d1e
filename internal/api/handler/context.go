package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
)

// ctxAccount extracts the identity injected by the Auth middleware. Both the
// role and the account id must be present; a token without them is
// structurally valid but unusable.
func ctxAccount(c echo.Context) (domain.Role, string, error) {
	role, _ := c.Get("role").(string)
	accountID, _ := c.Get("account_id").(string)
	if role == "" || accountID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Role(role), accountID, nil
}
