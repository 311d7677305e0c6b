package gateway

import (
	"context"
	"log/slog"

	"auth-api/app/domain"
	"auth-api/app/port"
	apperrors "auth-api/app/utils/errors"
	"auth-api/app/utils/logger"
)

// AuthGateway implements port.AuthGateway.
// It acts as an anti-corruption layer between the domain and the provider:
// the driver speaks HTTP, the gateway speaks domain records and the local
// error taxonomy.
type AuthGateway struct {
	client port.SupabaseClient
	logger *slog.Logger
}

// NewAuthGateway creates a new AuthGateway instance
func NewAuthGateway(client port.SupabaseClient, log *slog.Logger) *AuthGateway {
	return &AuthGateway{
		client: client,
		logger: log.With("component", "auth_gateway"),
	}
}

// Signup registers a user with the provider. A 200 response whose user
// carries a present-but-empty identities list is the provider's way of
// reporting a duplicate signup, so it is surfaced as USER_ALREADY_EXISTS.
func (g *AuthGateway) Signup(ctx context.Context, email, password string, metadata map[string]interface{}) (*domain.User, error) {
	g.logger.Info("registering user with provider", "email", logger.MaskEmail(email))

	user, session, err := g.client.Signup(ctx, email, password, metadata)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("signup response received",
		"has_user", user != nil,
		"has_session", session != nil)

	if user != nil && user.HasEmptyIdentities() {
		g.logger.Warn("signup returned empty identities, user likely already exists",
			"email", logger.MaskEmail(email))
		return nil, apperrors.New(apperrors.ErrCodeUserAlreadyExists,
			"User with this email already exists")
	}

	return user, nil
}

// SendOtp asks the provider to email an OTP code
func (g *AuthGateway) SendOtp(ctx context.Context, email string, createUser bool) error {
	g.logger.Info("requesting OTP send", "email", logger.MaskEmail(email))
	return g.client.SendOtp(ctx, email, createUser)
}

// VerifyOtp verifies an OTP code and returns the user plus session tokens
func (g *AuthGateway) VerifyOtp(ctx context.Context, email, token, otpType string) (*domain.User, *domain.Session, error) {
	g.logger.Info("verifying OTP", "email", logger.MaskEmail(email), "type", otpType)

	user, session, err := g.client.VerifyOtp(ctx, email, token, otpType)
	if err != nil {
		return nil, nil, err
	}

	g.logger.Info("OTP verified", "email", logger.MaskEmail(email))
	return user, session, nil
}

// CheckUserExists probes account existence through the OTP endpoint with
// createUser=false. A nil error means the provider accepted the request and
// the account exists; as a side effect a real OTP email goes out. A 429 is
// treated as "exists" since the provider's OTP rate limiter only trips for
// real accounts. Any other client-side rejection means the account is
// unknown. Best-effort only: network failures report "does not exist"
// rather than blocking registration.
func (g *AuthGateway) CheckUserExists(ctx context.Context, email string) bool {
	g.logger.Info("checking if user exists", "email", logger.MaskEmail(email))

	err := g.client.SendOtp(ctx, email, false)
	if err == nil {
		g.logger.Info("user exists, OTP sent by probe", "email", logger.MaskEmail(email))
		return true
	}

	if apperrors.IsCode(err, apperrors.ErrCodeRateLimitExceeded) {
		g.logger.Info("rate limit reached during probe, assuming user exists",
			"email", logger.MaskEmail(email))
		return true
	}

	if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.ErrCodeProviderError {
		g.logger.Info("user does not exist",
			"email", logger.MaskEmail(email),
			"status", appErr.StatusCode)
		return false
	}

	g.logger.Error("user existence check failed", "email", logger.MaskEmail(email), "error", err)
	return false
}
