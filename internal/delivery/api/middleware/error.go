package middleware

import (
	"log/slog"
	"net/http"

	"allergo/internal/delivery/api/response"
	deliverycontext "allergo/internal/delivery/context"
	domainerrors "allergo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is the single place that turns errors into responses.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnexpected(c, err)
			_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

			return
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, message := httpErrorCode(httpErr)
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnexpected(c, err)
		}
		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	m.logUnexpected(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(),
		"Internal server error, please try again later", nil)
}

func (m *ErrorMiddleware) logUnexpected(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

// httpErrorCode maps echo's own errors (routing, body limit, binding) onto error codes.
func httpErrorCode(httpErr *echo.HTTPError) (code, message string) {
	message = http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}

	switch httpErr.Code {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode(), message
	case http.StatusRequestEntityTooLarge:
		return domainerrors.ErrPayloadTooLarge.ErrorCode(), message
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return domainerrors.ErrValidationFailed.ErrorCode(), message
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED", message
	default:
		if httpErr.Code >= http.StatusInternalServerError {
			return domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later"
		}

		return "HTTP_ERROR", message
	}
}
