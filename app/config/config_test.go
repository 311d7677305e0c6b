package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-api/app/config"
)

func setEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	os.Clearenv()
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}

func baseEnv() map[string]string {
	return map[string]string{
		"SUPABASE_URL":      "https://project.supabase.co",
		"SUPABASE_ANON_KEY": "anon-key",
	}
}

func TestConfig_Load(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(*testing.T, *config.Config)
		wantErr string
	}{
		{
			name:    "default configuration",
			envVars: baseEnv(),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, "0.0.0.0", cfg.Host)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "https://project.supabase.co/auth/v1", cfg.SupabaseAuthURL)
				assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
				assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
				assert.Equal(t, 60, cfg.OtpExpiryMinutes)
				assert.Equal(t, "signup", cfg.OtpTemplateType)
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 60, cfg.RateLimitWaitSeconds)
			},
		},
		{
			name: "custom configuration",
			envVars: map[string]string{
				"SUPABASE_URL":             "https://project.supabase.co/",
				"SUPABASE_ANON_KEY":        "anon-key",
				"PORT":                     "9000",
				"LOG_LEVEL":                "debug",
				"SUPABASE_CONNECT_TIMEOUT": "2s",
				"SUPABASE_READ_TIMEOUT":    "30s",
				"RATE_LIMIT_WAIT_SECONDS":  "120",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "9000", cfg.Port)
				assert.Equal(t, "debug", cfg.LogLevel)
				// Trailing slash must not double up in the derived auth URL
				assert.Equal(t, "https://project.supabase.co/auth/v1", cfg.SupabaseAuthURL)
				assert.Equal(t, 2*time.Second, cfg.ConnectTimeout)
				assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
				assert.Equal(t, 120, cfg.RateLimitWaitSeconds)
			},
		},
		{
			name: "explicit auth URL override",
			envVars: map[string]string{
				"SUPABASE_URL":      "https://project.supabase.co",
				"SUPABASE_ANON_KEY": "anon-key",
				"SUPABASE_AUTH_URL": "http://localhost:9999",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "http://localhost:9999", cfg.SupabaseAuthURL)
			},
		},
		{
			name: "missing SUPABASE_URL",
			envVars: map[string]string{
				"SUPABASE_ANON_KEY": "anon-key",
			},
			wantErr: "SUPABASE_URL is required",
		},
		{
			name: "missing SUPABASE_ANON_KEY",
			envVars: map[string]string{
				"SUPABASE_URL": "https://project.supabase.co",
			},
			wantErr: "SUPABASE_ANON_KEY is required",
		},
		{
			name: "invalid URL scheme",
			envVars: map[string]string{
				"SUPABASE_URL":      "ftp://project.supabase.co",
				"SUPABASE_ANON_KEY": "anon-key",
			},
			wantErr: "scheme",
		},
		{
			name: "invalid port",
			envVars: func() map[string]string {
				env := baseEnv()
				env["PORT"] = "not-a-port"
				return env
			}(),
			wantErr: "invalid port",
		},
		{
			name: "port out of range",
			envVars: func() map[string]string {
				env := baseEnv()
				env["PORT"] = "70000"
				return env
			}(),
			wantErr: "between 1 and 65535",
		},
		{
			name: "invalid log level",
			envVars: func() map[string]string {
				env := baseEnv()
				env["LOG_LEVEL"] = "loud"
				return env
			}(),
			wantErr: "invalid log level",
		},
		{
			name: "invalid timeout",
			envVars: func() map[string]string {
				env := baseEnv()
				env["SUPABASE_READ_TIMEOUT"] = "ten seconds"
				return env
			}(),
			wantErr: "SUPABASE_READ_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.envVars)

			cfg, err := config.Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestConfig_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("port: \"9100\"\nread_timeout: 20s\nrate_limit_message: \"Wait {waitTime}s.\"\nrate_limit_wait_seconds: 90\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	env := baseEnv()
	env["CONFIG_FILE"] = path
	setEnv(t, env)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, 20*time.Second, cfg.ReadTimeout)
	// Untouched fields keep env/default values
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, "Wait 90s.", cfg.RateLimitNotice())
}

func TestConfig_FileOverrides_MissingFile(t *testing.T) {
	env := baseEnv()
	env["CONFIG_FILE"] = "/nonexistent/config.yaml"
	setEnv(t, env)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml")
}

func TestConfig_RateLimitNotice(t *testing.T) {
	setEnv(t, baseEnv())

	cfg, err := config.Load()
	require.NoError(t, err)

	notice := cfg.RateLimitNotice()
	assert.Contains(t, notice, "60 seconds")
	assert.NotContains(t, notice, "{waitTime}")
}
