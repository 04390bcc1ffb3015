package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "admin@lsweb.com", cfg.Admin.Email)
	assert.Equal(t, "smtp", cfg.Notify.Backend)
}

func TestGetEnvInt_ParsesValue(t *testing.T) {
	t.Setenv("SERVER_PORT", " 9090 ")

	cfg := LoadConfig()
	assert.Equal(t, 9090, cfg.ServerPort)
}

func TestGetEnvInt_MalformedFallsBackToDefault(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 5432, cfg.Database.Port, "a typo'd port must not silently become 0")
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("DB_USE_SSL", "TRUE")
	assert.True(t, LoadConfig().Database.UseSSL)

	t.Setenv("DB_USE_SSL", "garbage")
	assert.False(t, LoadConfig().Database.UseSSL)
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://lsweb.com, https://www.lsweb.com")

	cfg := LoadConfig()
	assert.Equal(t, []string{"https://lsweb.com", "https://www.lsweb.com"}, cfg.CORS.AllowedOrigins)
}
