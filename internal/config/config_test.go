package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/lanca")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("WEEK_START", "")
	t.Setenv("LIST_LIMIT", "")
	t.Setenv("CACHE_TTL_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.ListLimit)
	assert.Equal(t, time.Sunday, cfg.WeekStart)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/lanca")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AllowedOriginsTrimmed(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/lanca")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestParseWeekStart(t *testing.T) {
	d, err := ParseWeekStart("Monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d)

	_, err = ParseWeekStart("friday")
	assert.Error(t, err)
}
