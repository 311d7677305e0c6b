package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "auth-api/app/utils/errors"
	"auth-api/app/utils/validator"
)

// ErrorResponse is the uniform error body for every non-2xx response
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
}

const availableEndpoints = "POST /api/v1/auth/register, POST /api/v1/auth/verify-otp, POST /api/v1/auth/resend-otp, GET /api/v1/auth/health"

// NewHTTPErrorHandler builds the central echo error handler. Every error
// that escapes a handler is rendered here; nothing crashes the process.
func NewHTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := mapError(err, c)

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			log.Error("request failed",
				"status", resp.StatusCode,
				"code", resp.Error,
				"path", resp.Path,
				"error", err)
		default:
			log.Warn("request rejected",
				"status", resp.StatusCode,
				"code", resp.Error,
				"path", resp.Path)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(resp.StatusCode)
			return
		}
		_ = c.JSON(resp.StatusCode, resp)
	}
}

// mapError translates the local error taxonomy into the uniform body.
// Provider payloads never leak on 5xx-class failures: the message always
// comes from the taxonomy, not the raw response.
func mapError(err error, c echo.Context) ErrorResponse {
	path := c.Request().URL.Path
	timestamp := time.Now().UTC().Format(time.RFC3339)

	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Error:      string(apperrors.ErrCodeValidation),
			Message:    valErr.Error(),
			Timestamp:  timestamp,
			Path:       path,
		}
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return ErrorResponse{
			StatusCode: appErr.StatusCode,
			Error:      string(appErr.Code),
			Message:    appErr.Message,
			Timestamp:  timestamp,
			Path:       path,
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return mapEchoError(httpErr, c, timestamp)
	}

	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Error:      string(apperrors.ErrCodeInternal),
		Message:    "An unexpected error occurred. Please try again later.",
		Timestamp:  timestamp,
		Path:       path,
	}
}

// mapEchoError covers errors raised by echo itself: unknown routes, wrong
// verbs, and request binding failures.
func mapEchoError(httpErr *echo.HTTPError, c echo.Context, timestamp string) ErrorResponse {
	path := c.Request().URL.Path
	method := c.Request().Method

	switch httpErr.Code {
	case http.StatusNotFound:
		message := "Endpoint not found: " + method + " " + path
		if strings.Contains(path, "/auth") || strings.Contains(path, "/api") {
			message += ". Available endpoints: " + availableEndpoints
		}
		return ErrorResponse{
			StatusCode: http.StatusNotFound,
			Error:      string(apperrors.ErrCodeEndpointNotFound),
			Message:    message,
			Timestamp:  timestamp,
			Path:       path,
		}

	case http.StatusMethodNotAllowed:
		return ErrorResponse{
			StatusCode: http.StatusMethodNotAllowed,
			Error:      string(apperrors.ErrCodeMethodNotAllowed),
			Message:    "HTTP method '" + method + "' is not supported for this endpoint.",
			Timestamp:  timestamp,
			Path:       path,
		}

	case http.StatusBadRequest:
		// Bind failures: malformed JSON, wrong field types
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Error:      string(apperrors.ErrCodeValidation),
			Message:    "Invalid request body. Please check your input.",
			Timestamp:  timestamp,
			Path:       path,
		}

	case http.StatusTooManyRequests:
		return ErrorResponse{
			StatusCode: http.StatusTooManyRequests,
			Error:      string(apperrors.ErrCodeRateLimitExceeded),
			Message:    "Too many requests. Please slow down.",
			Timestamp:  timestamp,
			Path:       path,
		}
	}

	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Error:      string(apperrors.ErrCodeInternal),
		Message:    "An unexpected error occurred. Please try again later.",
		Timestamp:  timestamp,
		Path:       path,
	}
}
