package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "hrdesk/internal/delivery/context"
	"hrdesk/internal/delivery/http/response"
	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/errors"

	"github.com/labstack/echo/v4"
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

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}

		m.render(c, logger, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.render(c, logger, httpErr.Code, "HTTP_ERROR", fmt.Sprint(httpErr.Message), "")

		return
	}

	// Default to internal error; the cause stays in the log.
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.render(c, logger, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
}

func (m *ErrorMiddleware) render(c echo.Context, logger *slog.Logger, status int, code, message, details string) {
	if err := response.Error(c, status, code, message, details); err != nil {
		logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
