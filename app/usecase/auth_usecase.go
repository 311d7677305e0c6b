package usecase

import (
	"context"
	"log/slog"

	"auth-api/app/domain"
	"auth-api/app/port"
	apperrors "auth-api/app/utils/errors"
	"auth-api/app/utils/logger"
)

// Status messages attached to successful responses
const (
	MsgRegistered = "Registration successful. Please check your email for the verification code."
	MsgVerified   = "Email verified successfully. You are now logged in."
	MsgOtpSent    = "OTP code has been sent to your email"
)

// AuthUsecase implements port.AuthUsecase. Each operation is a straight
// translation pipeline: map to provider shape, call the gateway, map back.
// Gateway errors pass through unchanged for the REST boundary to render.
type AuthUsecase struct {
	gateway port.AuthGateway
	logger  *slog.Logger
}

// NewAuthUsecase creates a new AuthUsecase instance
func NewAuthUsecase(gateway port.AuthGateway, log *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		gateway: gateway,
		logger:  log.With("component", "auth_usecase"),
	}
}

// RegisterUser registers a new user with the provider. The provider sends
// the OTP email itself; no session exists until the code is verified.
func (u *AuthUsecase) RegisterUser(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResult, error) {
	u.logger.Info("registering new user", "email", logger.MaskEmail(req.Email))

	// Pre-check existence before attempting signup. Best-effort: signup's
	// own duplicate detection still backstops this.
	if u.gateway.CheckUserExists(ctx, req.Email) {
		u.logger.Warn("registration rejected, user already exists",
			"email", logger.MaskEmail(req.Email))
		return nil, apperrors.New(apperrors.ErrCodeUserAlreadyExists,
			"User with email "+logger.MaskEmail(req.Email)+" already exists")
	}

	metadata := map[string]interface{}{
		"firstname": req.Firstname,
		"lastname":  req.Lastname,
	}

	user, err := u.gateway.Signup(ctx, req.Email, req.Password, metadata)
	if err != nil {
		return nil, err
	}

	u.logger.Info("user registered, OTP sent", "email", logger.MaskEmail(req.Email))

	return &domain.AuthResult{
		User:    user,
		Session: nil,
		Message: MsgRegistered,
	}, nil
}

// VerifyOtp verifies an OTP code and returns the provider session tokens
func (u *AuthUsecase) VerifyOtp(ctx context.Context, req *domain.VerifyOtpRequest) (*domain.AuthResult, error) {
	u.logger.Info("verifying OTP", "email", logger.MaskEmail(req.Email))

	otpType := req.Type
	if otpType == "" {
		otpType = domain.OtpTypeSignup
	}

	user, session, err := u.gateway.VerifyOtp(ctx, req.Email, req.Token, otpType)
	if err != nil {
		return nil, err
	}

	u.logger.Info("OTP verified", "email", logger.MaskEmail(req.Email))

	return &domain.AuthResult{
		User:    user,
		Session: session,
		Message: MsgVerified,
	}, nil
}

// ResendOtp asks the provider to send a fresh OTP code to an existing user
func (u *AuthUsecase) ResendOtp(ctx context.Context, req *domain.ResendOtpRequest) (string, error) {
	u.logger.Info("resending OTP", "email", logger.MaskEmail(req.Email))

	// createUser=false: resend must not create accounts
	if err := u.gateway.SendOtp(ctx, req.Email, false); err != nil {
		return "", err
	}

	u.logger.Info("OTP resent", "email", logger.MaskEmail(req.Email))
	return MsgOtpSent, nil
}
