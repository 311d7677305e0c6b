package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"auth-api/app/domain"
)

// AuthUsecase defines the authentication orchestration interface
type AuthUsecase interface {
	RegisterUser(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResult, error)
	VerifyOtp(ctx context.Context, req *domain.VerifyOtpRequest) (*domain.AuthResult, error)
	ResendOtp(ctx context.Context, req *domain.ResendOtpRequest) (string, error)
}

// AuthGateway is the sole point of contact with the external auth provider
type AuthGateway interface {
	Signup(ctx context.Context, email, password string, metadata map[string]interface{}) (*domain.User, error)
	SendOtp(ctx context.Context, email string, createUser bool) error
	VerifyOtp(ctx context.Context, email, token, otpType string) (*domain.User, *domain.Session, error)
	CheckUserExists(ctx context.Context, email string) bool
}

// SupabaseClient abstracts the GoTrue HTTP driver for the gateway
type SupabaseClient interface {
	Signup(ctx context.Context, email, password string, metadata map[string]interface{}) (*domain.User, *domain.Session, error)
	SendOtp(ctx context.Context, email string, createUser bool) error
	VerifyOtp(ctx context.Context, email, token, otpType string) (*domain.User, *domain.Session, error)
	HealthCheck(ctx context.Context) error
}
