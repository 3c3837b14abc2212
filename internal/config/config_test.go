package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateahq/Platea_Backend/internal/config"
	"github.com/plateahq/Platea_Backend/internal/constants"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, constants.EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, constants.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, constants.DefaultUserStorePath, cfg.Storage.UserFile)
	assert.Equal(t, constants.DefaultJWTExpiry, cfg.JWT.Expiry)
	assert.Equal(t, constants.DefaultJWTIssuer, cfg.JWT.Issuer)
	assert.Equal(t, constants.DefaultBcryptCost, cfg.PasswordHash.Cost)
}

// The process must never start without a real signing secret, in any
// environment.
func TestLoadFailsWithoutJWTSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"Missing secret", ""},
		{"Placeholder secret", "changeme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", tt.secret)

			_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "JWT secret")
		})
	}
}

func TestLoadReadsYAMLFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	path := writeConfigFile(t, `
app:
  environment: production
  name: platea-api
server:
  port: 9000
jwt:
  expiry: 2h
  issuer: platea-api
logging:
  level: warn
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "7777")
	t.Setenv("JWT_EXPIRY", "1h30m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	path := writeConfigFile(t, `
server:
  port: 9000
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, 90*time.Minute, cfg.JWT.Expiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "staging")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLoadRejectsMalformedDurationEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY", "two hours")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestServerAddress(t *testing.T) {
	settings := config.ServerSettings{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", settings.ServerAddress())
}
