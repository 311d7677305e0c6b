package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the authentication API
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Supabase project
	SupabaseURL            string `yaml:"supabase_url"`
	SupabaseAnonKey        string `yaml:"-"`
	SupabaseServiceRoleKey string `yaml:"-"` // reserved; no call uses it yet
	SupabaseAuthURL        string `yaml:"supabase_auth_url"`

	// Outbound HTTP client
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`

	// OTP
	OtpExpiryMinutes int    `yaml:"otp_expiry_minutes"`
	OtpTemplateType  string `yaml:"otp_template_type"`

	// Provider rate limit mapping
	RateLimitEnabled     bool   `yaml:"rate_limit_enabled"`
	RateLimitWaitSeconds int    `yaml:"rate_limit_wait_seconds"`
	RateLimitMessage     string `yaml:"rate_limit_message"`
}

// DefaultRateLimitMessage is substituted with the configured wait time when
// the provider answers 429 on an OTP request.
const DefaultRateLimitMessage = "Too many OTP requests. Please wait {waitTime} seconds before trying again."

// Load reads configuration from environment variables, then applies the
// optional YAML override file named by CONFIG_FILE.
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "8080")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Supabase configuration
	config.SupabaseURL = os.Getenv("SUPABASE_URL")
	if config.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}

	config.SupabaseAnonKey = os.Getenv("SUPABASE_ANON_KEY")
	if config.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}

	config.SupabaseServiceRoleKey = os.Getenv("SUPABASE_SERVICE_ROLE_KEY")

	config.SupabaseAuthURL = getEnvOrDefault("SUPABASE_AUTH_URL",
		strings.TrimRight(config.SupabaseURL, "/")+"/auth/v1")

	// Outbound HTTP client configuration
	var err error
	config.ConnectTimeout, err = getDurationEnv("SUPABASE_CONNECT_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	config.ReadTimeout, err = getDurationEnv("SUPABASE_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	// OTP configuration
	config.OtpExpiryMinutes, err = getIntEnv("OTP_EXPIRY_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	config.OtpTemplateType = getEnvOrDefault("OTP_TEMPLATE_TYPE", "signup")

	// Rate limit mapping configuration
	config.RateLimitEnabled = getBoolEnv("RATE_LIMIT_ENABLED", true)
	config.RateLimitWaitSeconds, err = getIntEnv("RATE_LIMIT_WAIT_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	config.RateLimitMessage = getEnvOrDefault("RATE_LIMIT_MESSAGE", DefaultRateLimitMessage)

	// Optional YAML override file
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.applyFileOverrides(path); err != nil {
			return nil, fmt.Errorf("failed to apply config file %s: %w", path, err)
		}
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// RateLimitNotice renders the rate-limit message template with the
// configured wait time.
func (c *Config) RateLimitNotice() string {
	return strings.ReplaceAll(c.RateLimitMessage, "{waitTime}", strconv.Itoa(c.RateLimitWaitSeconds))
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if err := validateProviderURL(c.SupabaseURL, "SUPABASE_URL"); err != nil {
		return err
	}
	if err := validateProviderURL(c.SupabaseAuthURL, "SUPABASE_AUTH_URL"); err != nil {
		return err
	}

	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("connect timeout must be positive, got: %v", c.ConnectTimeout)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive, got: %v", c.ReadTimeout)
	}
	if c.OtpExpiryMinutes < 1 {
		return fmt.Errorf("OTP expiry must be at least 1 minute, got: %d", c.OtpExpiryMinutes)
	}
	if c.RateLimitWaitSeconds < 1 {
		return fmt.Errorf("rate limit wait must be at least 1 second, got: %d", c.RateLimitWaitSeconds)
	}

	return nil
}

// validateProviderURL rejects URLs the HTTP client could not use. Detecting
// this at startup beats a confusing DNS error on the first request.
func validateProviderURL(raw, name string) error {
	if raw == "" {
		return fmt.Errorf("%s is not configured", name)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid %s scheme: must be http or https, got %q", name, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid %s: missing host in %q", name, raw)
	}
	return nil
}

// applyFileOverrides merges the YAML file into already-loaded values.
// Only fields present in the file are touched.
func (c *Config) applyFileOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Durations come in as strings ("5s") since yaml.v3 has no native
	// time.Duration decoding.
	overrides := struct {
		Port                 *string `yaml:"port"`
		Host                 *string `yaml:"host"`
		LogLevel             *string `yaml:"log_level"`
		ConnectTimeout       *string `yaml:"connect_timeout"`
		ReadTimeout          *string `yaml:"read_timeout"`
		OtpExpiryMinutes     *int    `yaml:"otp_expiry_minutes"`
		OtpTemplateType      *string `yaml:"otp_template_type"`
		RateLimitEnabled     *bool   `yaml:"rate_limit_enabled"`
		RateLimitWaitSeconds *int    `yaml:"rate_limit_wait_seconds"`
		RateLimitMessage     *string `yaml:"rate_limit_message"`
	}{}

	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return err
	}

	if overrides.Port != nil {
		c.Port = *overrides.Port
	}
	if overrides.Host != nil {
		c.Host = *overrides.Host
	}
	if overrides.LogLevel != nil {
		c.LogLevel = *overrides.LogLevel
	}
	if overrides.ConnectTimeout != nil {
		d, err := time.ParseDuration(*overrides.ConnectTimeout)
		if err != nil {
			return fmt.Errorf("invalid connect_timeout: %w", err)
		}
		c.ConnectTimeout = d
	}
	if overrides.ReadTimeout != nil {
		d, err := time.ParseDuration(*overrides.ReadTimeout)
		if err != nil {
			return fmt.Errorf("invalid read_timeout: %w", err)
		}
		c.ReadTimeout = d
	}
	if overrides.OtpExpiryMinutes != nil {
		c.OtpExpiryMinutes = *overrides.OtpExpiryMinutes
	}
	if overrides.OtpTemplateType != nil {
		c.OtpTemplateType = *overrides.OtpTemplateType
	}
	if overrides.RateLimitEnabled != nil {
		c.RateLimitEnabled = *overrides.RateLimitEnabled
	}
	if overrides.RateLimitWaitSeconds != nil {
		c.RateLimitWaitSeconds = *overrides.RateLimitWaitSeconds
	}
	if overrides.RateLimitMessage != nil {
		c.RateLimitMessage = *overrides.RateLimitMessage
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
