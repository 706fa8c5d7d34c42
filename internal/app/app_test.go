package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhangowdaa/mak-backend/internal/config"
)

func TestBuildInMemory(t *testing.T) {
	cfg := &config.Config{
		Storage:     "memory",
		AdminSecret: "s",
		JWTSecret:   "j",
		TMDBBaseURL: "http://127.0.0.1:0",
	}
	a, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close(context.Background())

	assert.Nil(t, a.Session)
	assert.Nil(t, a.Cache)
	assert.NotNil(t, a.Movies)
	assert.NotNil(t, a.Upcoming)

	stats, err := a.Browse.FooterStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTitles)
}

func TestBuildRejectsUnknownStorage(t *testing.T) {
	_, err := Build(context.Background(), &config.Config{Storage: "sqlite", AdminSecret: "s"})
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	closer := SetupLogging("")
	require.NoError(t, closer.Close())

	path := filepath.Join(t.TempDir(), "api.log")
	closer = SetupLogging(path)
	t.Cleanup(func() { _ = closer.Close() })
	assert.FileExists(t, path)
}
