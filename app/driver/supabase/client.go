package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"auth-api/app/config"
	"auth-api/app/domain"
	apperrors "auth-api/app/utils/errors"
	"auth-api/app/utils/logger"
)

// maxErrorBodyBytes caps how much of a provider error body is read for
// classification and logging.
const maxErrorBodyBytes = 8 << 10

// Client is the outbound HTTP client bound to the provider's GoTrue API.
// It is the only type in this service that opens network connections.
type Client struct {
	httpClient       *http.Client
	baseURL          string
	anonKey          string
	rateLimitEnabled bool
	rateLimitNotice  string
	logger           *slog.Logger
}

// NewClient creates a new GoTrue client from the loaded configuration
func NewClient(cfg *config.Config, log *slog.Logger) (*Client, error) {
	if !isValidURL(cfg.SupabaseAuthURL) {
		return nil, apperrors.Newf(apperrors.ErrCodeConfiguration,
			"invalid Supabase auth URL: %s", cfg.SupabaseAuthURL)
	}

	if strings.HasPrefix(cfg.SupabaseAuthURL, "http://") {
		log.Warn("Supabase auth URL uses plain HTTP; credentials travel unencrypted",
			"url", cfg.SupabaseAuthURL)
	}

	httpClient := &http.Client{
		Timeout: cfg.ReadTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: cfg.ConnectTimeout,
			}).DialContext,
		},
	}

	log.Info("Supabase client initialized",
		"auth_url", cfg.SupabaseAuthURL,
		"connect_timeout", cfg.ConnectTimeout,
		"read_timeout", cfg.ReadTimeout)

	return &Client{
		httpClient:       httpClient,
		baseURL:          strings.TrimRight(cfg.SupabaseAuthURL, "/"),
		anonKey:          cfg.SupabaseAnonKey,
		rateLimitEnabled: cfg.RateLimitEnabled,
		rateLimitNotice:  cfg.RateLimitNotice(),
		logger:           log.With("component", "supabase_client"),
	}, nil
}

// Signup registers a new user with the provider. The provider sends the
// verification OTP email itself on success.
func (c *Client) Signup(ctx context.Context, email, password string, metadata map[string]interface{}) (*domain.User, *domain.Session, error) {
	c.logger.Debug("calling signup endpoint", "email", logger.MaskEmail(email))

	body, status, err := c.post(ctx, "/signup", signupRequest{
		Email:    email,
		Password: password,
		Data:     metadata,
	})
	if err != nil {
		return nil, nil, c.classifyNetworkError(err, "signup")
	}

	if status != http.StatusOK {
		return nil, nil, c.classifySignupError(status, string(body))
	}

	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrCodeServiceUnavailable,
			"Authentication provider returned an unreadable signup response.", err)
	}

	return resp.User.toDomain(), resp.Session.toDomain(), nil
}

// SendOtp asks the provider to email an OTP code. With createUser=false the
// provider refuses for unknown accounts, which CheckUserExists relies on.
func (c *Client) SendOtp(ctx context.Context, email string, createUser bool) error {
	c.logger.Debug("calling otp endpoint",
		"email", logger.MaskEmail(email),
		"create_user", createUser)

	body, status, err := c.post(ctx, "/otp", otpRequest{
		Email:      email,
		CreateUser: createUser,
	})
	if err != nil {
		return c.classifyNetworkError(err, "send OTP")
	}

	if status != http.StatusOK {
		return c.classifyOtpError(status, string(body))
	}

	c.logger.Info("OTP sent", "email", logger.MaskEmail(email))
	return nil
}

// VerifyOtp exchanges an OTP code for provider session tokens
func (c *Client) VerifyOtp(ctx context.Context, email, token, otpType string) (*domain.User, *domain.Session, error) {
	c.logger.Debug("calling verify endpoint", "email", logger.MaskEmail(email))

	body, status, err := c.post(ctx, "/verify", verifyRequest{
		Email: email,
		Token: token,
		Type:  otpType,
	})
	if err != nil {
		return nil, nil, c.classifyNetworkError(err, "verify OTP")
	}

	if status != http.StatusOK {
		return nil, nil, c.classifyVerifyError(status, string(body))
	}

	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrCodeServiceUnavailable,
			"Authentication provider returned an unreadable verification response.", err)
	}

	return resp.User.toDomain(), resp.Session.toDomain(), nil
}

// HealthCheck probes the provider's health endpoint
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach Supabase auth API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Supabase auth API returned status %d", resp.StatusCode)
	}
	return nil
}

// post issues a JSON POST and returns the (possibly truncated) body and
// status. Transport-level failures come back as the error.
func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		body = []byte("unable to read response body")
	}

	return body, resp.StatusCode, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// isValidURL validates if a URL is properly formatted
func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	return (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") && parsedURL.Host != ""
}
