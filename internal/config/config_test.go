package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromOrigin(t *testing.T) {
	t.Setenv("API_ORIGIN", "https://larek.example/")
	t.Setenv("LAREK_API_URL", "")
	t.Setenv("LAREK_CDN_URL", "")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://larek.example/api/weblarek", cfg.Larek.APIURL)
	assert.Equal(t, "https://larek.example/content/weblarek", cfg.Larek.CDNURL)
	assert.Equal(t, 30*time.Second, cfg.Larek.Timeout)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_ExplicitURLs(t *testing.T) {
	t.Setenv("API_ORIGIN", "")
	t.Setenv("LAREK_API_URL", "http://localhost:3000/api/")
	t.Setenv("LAREK_CDN_URL", "http://localhost:3000/cdn")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/api", cfg.Larek.APIURL)
	assert.Equal(t, "http://localhost:3000/cdn", cfg.Larek.CDNURL)
	assert.Equal(t, 5*time.Second, cfg.Larek.Timeout)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing origin", func(t *testing.T) {
		t.Setenv("API_ORIGIN", "")
		t.Setenv("LAREK_API_URL", "")
		t.Setenv("LAREK_CDN_URL", "")

		_, err := Load()
		assert.ErrorContains(t, err, "API_ORIGIN is required")
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("API_ORIGIN", "https://larek.example")
		t.Setenv("HTTP_TIMEOUT", "soon")

		_, err := Load()
		assert.ErrorContains(t, err, "HTTP_TIMEOUT")
	})
}
