package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/api/metrics"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AdminLogin authenticates an admin and returns a JWT token.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, domain.RoleAdmin)
}

// ClientLogin authenticates a client and returns a JWT token.
func (h *AuthHandler) ClientLogin(c echo.Context) error {
	return h.login(c, domain.RoleClient)
}

func (h *AuthHandler) login(c echo.Context, role domain.Role) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, account, err := h.authService.Login(c.Request().Context(), role, req.Email, req.Password)
	metrics.LoginsTotal.WithLabelValues(string(role), outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		Message: "Logged in successfully!",
		Token:   token,
		Account: toAccountResponse(account),
	})
}
