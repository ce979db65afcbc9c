package config

import (
	"testing"

	"github.com/caarlos0/env/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10000, cfg.KDFIterations)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("KDF_ITERATIONS", "20000")

	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 20000, cfg.KDFIterations)
}
