package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/api/metrics"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

// PasswordHandler serves the password change endpoints for admins and clients.
type PasswordHandler struct {
	service ports.PasswordService
}

func NewPasswordHandler(service ports.PasswordService) *PasswordHandler {
	return &PasswordHandler{service: service}
}

// Change handles PUT /api/admin/password and PUT /api/client/password. The
// account is the one named by the bearer token.
func (h *PasswordHandler) Change(c echo.Context) error {
	role, accountID, err := ctxAccount(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidInput.WithMessage("The request body is either invalid or is not an object!")
	}

	in := ports.ChangePasswordInput{Role: role, AccountID: accountID}
	if req.Passwords != nil {
		in.CurrentPassword = req.Passwords.CurrentPassword
		in.NewPassword = req.Passwords.NewPassword
	}

	res, err := h.service.ChangePassword(c.Request().Context(), in)
	metrics.PasswordChangesTotal.WithLabelValues(string(role), outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: res.Message})
}

// outcome labels a service result for metrics.
func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return domain.KindOf(err).String()
}
