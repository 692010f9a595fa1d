package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080", Host: "0.0.0.0", Env: "development"},
		Auth: AuthConfig{
			Username:   "admin",
			Password:   "admin",
			JWTSecret:  "secret",
			SessionTTL: "24h",
		},
		Reminder: ReminderConfig{Schedule: "0 9 * * *", CountryCode: "55"},
		Health:   HealthConfig{Timeout: "5s"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "SERVER_PORT"},
		{"missing credentials", func(c *Config) { c.Auth.Password = "" }, "AUTH_USERNAME and AUTH_PASSWORD"},
		{"missing jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }, "AUTH_JWT_SECRET"},
		{"bad session ttl", func(c *Config) { c.Auth.SessionTTL = "soon" }, "AUTH_SESSION_TTL"},
		{"bad cron schedule", func(c *Config) { c.Reminder.Schedule = "every day at nine" }, "REMINDER_SCHEDULE"},
		{"bad health timeout", func(c *Config) { c.Health.Timeout = "5 seconds" }, "HEALTH_CHECK_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDurationAccessors(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, 24*time.Hour, cfg.GetSessionTTL())
	assert.Equal(t, 5*time.Second, cfg.GetHealthTimeout())
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Server.Env = "prod"
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}
