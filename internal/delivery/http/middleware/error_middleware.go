package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "fleetgate/internal/delivery/context"
	"fleetgate/internal/delivery/http/response"
	domainerrors "fleetgate/internal/domain/errors"
	"fleetgate/internal/infra/upstream"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
		return
	}

	// Upstream failures carry the status and the user-facing message the
	// upstream layer already composed.
	var upstreamErr *upstream.Error
	if errors.As(err, &upstreamErr) {
		code := upstreamErr.StatusCode
		if code < http.StatusBadRequest {
			code = http.StatusBadGateway
		}
		_ = response.Error(c, code, "UPSTREAM_ERROR", upstreamErr.Message, "")
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", fmt.Sprintf("%v", httpErr.Message), "")
		return
	}

	logger := deliverycontext.LoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
		"Internal server error", err.Error())
}
