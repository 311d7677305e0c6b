package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"auth-api/app/config"
	"auth-api/app/driver/supabase"
	"auth-api/app/gateway"
	"auth-api/app/port"
	"auth-api/app/rest"
	"auth-api/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	SupabaseClient *supabase.Client

	// Gateways
	AuthGateway port.AuthGateway

	// Usecases
	AuthUsecase port.AuthUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.SupabaseClient, err = supabase.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}

	container.AuthGateway = gateway.NewAuthGateway(container.SupabaseClient, logger)
	container.AuthUsecase = usecase.NewAuthUsecase(container.AuthGateway, logger)

	// Probe the provider once at startup. Informational only: the health
	// endpoint stays UP regardless.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := container.SupabaseClient.HealthCheck(ctx); err != nil {
		logger.Warn("Supabase auth API is not reachable at startup", "error", err)
	} else {
		logger.Info("Supabase auth API is reachable")
	}

	logger.Info("container initialized")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:      c.Logger,
		AuthUsecase: c.AuthUsecase,
		EnableDebug: c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}
