package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"auth-api/app/port"
	"auth-api/app/rest/handlers"
	custommw "auth-api/app/rest/middleware"
	"auth-api/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger      *slog.Logger
	AuthUsecase port.AuthUsecase
	EnableDebug bool
}

// echoValidator adapts utils/validator to echo's Validator interface
type echoValidator struct {
	validator *validator.Validator
}

func (v *echoValidator) Validate(i interface{}) error {
	return v.validator.Validate(i)
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.Validator = &echoValidator{validator: validator.New()}
	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(config.Logger)

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.NewRateLimiter().RateLimit())

	// Request logging
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	auth := e.Group("/api/v1/auth")

	auth.POST("/register", authHandler.Register)
	auth.POST("/verify-otp", authHandler.VerifyOtp)
	auth.POST("/resend-otp", authHandler.ResendOtp)
	auth.GET("/health", healthHandler.HealthCheck)

	return e
}
