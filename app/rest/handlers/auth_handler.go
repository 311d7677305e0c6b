package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"auth-api/app/domain"
	"auth-api/app/port"
	apperrors "auth-api/app/utils/errors"
	"auth-api/app/utils/logger"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      log.With("component", "auth_handler"),
	}
}

// Register handles POST /api/v1/auth/register.
// The provider emails the verification OTP; the response carries no session.
func (h *AuthHandler) Register(c echo.Context) error {
	var req domain.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeValidation,
			"Invalid request body. Please check your input.", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.logger.Info("registration request received", "email", logger.MaskEmail(req.Email))

	result, err := h.authUsecase.RegisterUser(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// VerifyOtp handles POST /api/v1/auth/verify-otp.
// Malformed tokens are rejected here, before any provider call.
func (h *AuthHandler) VerifyOtp(c echo.Context) error {
	var req domain.VerifyOtpRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeValidation,
			"Invalid request body. Please check your input.", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.logger.Info("OTP verification request received", "email", logger.MaskEmail(req.Email))

	result, err := h.authUsecase.VerifyOtp(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// ResendOtp handles POST /api/v1/auth/resend-otp
func (h *AuthHandler) ResendOtp(c echo.Context) error {
	var req domain.ResendOtpRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeValidation,
			"Invalid request body. Please check your input.", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.logger.Info("OTP resend request received", "email", logger.MaskEmail(req.Email))

	message, err := h.authUsecase.ResendOtp(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": message,
	})
}
