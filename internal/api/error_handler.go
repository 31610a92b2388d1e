package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps tagged domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

// statusFor maps a domain error kind to its HTTP status. Internal has no
// entry; it falls through to the generic 500.
var statusFor = map[domain.ErrorKind]int{
	domain.KindInvalidInput:      http.StatusBadRequest,
	domain.KindInvalidID:         http.StatusConflict,
	domain.KindNotFound:          http.StatusNotFound,
	domain.KindInvalidCredential: http.StatusConflict,
	domain.KindSchemaViolation:   http.StatusUnprocessableEntity,
	domain.KindUnauthorized:      http.StatusUnauthorized,
	domain.KindConflict:          http.StatusConflict,
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var de *domain.Error
	if errors.As(err, &de) {
		if code, ok := statusFor[de.Kind]; ok {
			return code, de.Message
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error"
}
