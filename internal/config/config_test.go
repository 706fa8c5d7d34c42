package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("STORAGE", "")
	t.Setenv("METADATA_TIMEOUT", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "mongo", cfg.Storage)
	assert.Equal(t, 10*time.Second, cfg.MetadataTimeout)
	assert.Equal(t, float64(20), cfg.TMDBRatePerSec)
	assert.Equal(t, "backup", cfg.BackupDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE", "memory")
	t.Setenv("METADATA_TIMEOUT", "3")
	t.Setenv("METADATA_CACHE_TTL", "2h")
	t.Setenv("TMDB_RATE_PER_SEC", "4.5")

	cfg := Load()
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.Storage)
	assert.Equal(t, 3*time.Second, cfg.MetadataTimeout)
	assert.Equal(t, 2*time.Hour, cfg.MetadataCacheTTL)
	assert.Equal(t, 4.5, cfg.TMDBRatePerSec)
}

func TestBadDurationFallsBack(t *testing.T) {
	t.Setenv("METADATA_TIMEOUT", "soon")
	assert.Equal(t, 10*time.Second, Load().MetadataTimeout)
}

func TestSecretsRequiredOutsideDev(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("ADMIN_SECRET", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	assert.Empty(t, cfg.AdminSecret)
	require.Error(t, cfg.Validate())

	t.Setenv("ADMIN_SECRET", "s3cret")
	require.ErrorContains(t, Load().Validate(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "jwt")
	require.NoError(t, Load().Validate())
}

func TestDevFillsSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ADMIN_SECRET", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	assert.True(t, cfg.IsDev())
	assert.NotEmpty(t, cfg.AdminSecret)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.NoError(t, cfg.Validate())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	assert.Empty(t, Load().CORSOrigins)

	t.Setenv("CORS_ORIGINS", "https://mak.example, http://localhost:3000,")
	assert.Equal(t, []string{"https://mak.example", "http://localhost:3000"}, Load().CORSOrigins)
}
