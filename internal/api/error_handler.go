package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spendbook/expenses-api/internal/api/metrics"
	"github.com/spendbook/expenses-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps validation failures to 400 and missing records to 404.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if err := c.JSON(code, errorResponse{Error: msg}); err != nil {
			log.Error().Err(err).Msg("failed to write error response")
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Input failures carry their client-facing message verbatim.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		metrics.ValidationFailuresTotal.WithLabelValues(resourceLabel(c)).Inc()
		return http.StatusBadRequest, ve.Message
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrExpenseNotFound):
		return http.StatusNotFound, "Expense not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func resourceLabel(c echo.Context) string {
	if strings.HasPrefix(c.Path(), "/users") {
		return "user"
	}
	return "expense"
}
