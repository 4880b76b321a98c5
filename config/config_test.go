package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "valid config",
			config: Config{DatabaseURL: "postgresql://localhost/sales", JWTSecret: "secret"},
		},
		{
			name:    "missing database url",
			config:  Config{JWTSecret: "secret"},
			wantErr: "DATABASE_URL is required",
		},
		{
			name:    "missing jwt secret",
			config:  Config{DatabaseURL: "postgresql://localhost/sales"},
			wantErr: "JWT_SECRET is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://localhost/sales_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "postgresql://localhost/sales_test", cfg.DatabaseURL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "test", cfg.GoEnv)
	assert.True(t, cfg.IsTest())
	assert.False(t, cfg.IsProduction())
}

func TestGetEnvDefault(t *testing.T) {
	os.Unsetenv("SOME_UNSET_KEY")
	assert.Equal(t, "fallback", getEnv("SOME_UNSET_KEY", "fallback"))

	t.Setenv("SOME_SET_KEY", "value")
	assert.Equal(t, "value", getEnv("SOME_SET_KEY", "fallback"))
}
