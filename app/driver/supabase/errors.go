package supabase

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"

	apperrors "auth-api/app/utils/errors"
)

// Provider error bodies are classified by (status, substring) pairs. The
// substrings mirror GoTrue's current wording and are a documented heuristic:
// the provider's contract does not guarantee this text, so every rule keeps
// a status-code fallback.

// classifySignupError maps signup failures onto the local taxonomy
func (c *Client) classifySignupError(status int, body string) *apperrors.AppError {
	c.logger.Error("signup failed", "status", status, "body", truncate(body, 200))

	if status == http.StatusUnprocessableEntity ||
		strings.Contains(body, "already registered") ||
		strings.Contains(body, "already been registered") {
		return apperrors.New(apperrors.ErrCodeUserAlreadyExists,
			"User with this email already exists")
	}

	if isServerError(status) {
		return apperrors.New(apperrors.ErrCodeServiceUnavailable,
			"Authentication service is temporarily unavailable. Please try again later.")
	}

	if status == http.StatusBadRequest {
		return apperrors.NewProviderError(status, "Invalid request data. Please check your input.")
	}
	return apperrors.NewProviderError(status, "Signup failed: "+truncate(body, 200))
}

// classifyOtpError maps OTP send failures onto the local taxonomy
func (c *Client) classifyOtpError(status int, body string) *apperrors.AppError {
	c.logger.Error("OTP request failed", "status", status, "body", truncate(body, 200))

	if status == http.StatusTooManyRequests && c.rateLimitEnabled {
		return apperrors.New(apperrors.ErrCodeRateLimitExceeded, c.rateLimitNotice)
	}

	if isServerError(status) {
		return apperrors.New(apperrors.ErrCodeServiceUnavailable,
			"Authentication service is temporarily unavailable. Please try again later.")
	}

	if status == http.StatusBadRequest {
		return apperrors.NewProviderError(status, "Invalid email address.")
	}
	return apperrors.NewProviderError(status, "OTP request failed: "+truncate(body, 200))
}

// classifyVerifyError maps OTP verification failures onto the local taxonomy
func (c *Client) classifyVerifyError(status int, body string) *apperrors.AppError {
	c.logger.Error("OTP verification failed", "status", status, "body", truncate(body, 200))

	if status == http.StatusUnauthorized ||
		strings.Contains(body, "invalid") ||
		strings.Contains(body, "Token has expired") {
		return apperrors.New(apperrors.ErrCodeInvalidOtp,
			"The OTP code provided is incorrect or has expired")
	}

	if status == http.StatusGone || strings.Contains(body, "expired") {
		return apperrors.New(apperrors.ErrCodeOtpExpired,
			"The OTP code has expired. Please request a new one.")
	}

	if isServerError(status) {
		return apperrors.New(apperrors.ErrCodeServiceUnavailable,
			"Authentication service is temporarily unavailable. Please try again later.")
	}

	if status == http.StatusBadRequest {
		return apperrors.NewProviderError(status, "Invalid verification request. Please check your input.")
	}
	return apperrors.NewProviderError(status, "OTP verification failed: "+truncate(body, 200))
}

// classifyNetworkError discriminates transport failures. DNS failures,
// refused connections and timeouts all map to SERVICE_UNAVAILABLE; the
// distinction is only for message and log quality.
func (c *Client) classifyNetworkError(err error, operation string) *apperrors.AppError {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		c.logger.Error("DNS resolution failed", "operation", operation, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeServiceUnavailable,
			"Unable to resolve the authentication provider host. Please check the SUPABASE_URL configuration.", err)
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		c.logger.Error("connection refused", "operation", operation, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeServiceUnavailable,
			"Unable to connect to the authentication provider. Please check if the URL is correct and the service is accessible.", err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		c.logger.Error("request timed out", "operation", operation, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeServiceUnavailable,
			"Connection to the authentication provider timed out. The service may be slow or unreachable. Please try again.", err)
	}

	c.logger.Error("network error", "operation", operation, "error", err)
	return apperrors.Wrap(apperrors.ErrCodeServiceUnavailable,
		"Network error occurred while contacting the authentication provider.", err)
}

func isServerError(status int) bool {
	return status >= 500 && status <= 599
}

func truncate(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + "..."
}
