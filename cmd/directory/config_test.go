package main

import (
	"testing"
	"time"

	"citydirectory/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVICE_PORT_GRPC", "")
	t.Setenv("SERVICE_PORT_HTTP", "")
	t.Setenv("API_KEYS", "secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REAP_INTERVAL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 50050, cfg.GRPCPort)
	assert.Equal(t, 0, cfg.HTTPPort)
	assert.Equal(t, []string{"secret"}, cfg.APIKeys)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, service.DefaultReapInterval, cfg.ReapInterval)
}

func TestLoadConfig_OverrideSERVICE_PORT_GRPC(t *testing.T) {
	t.Setenv("SERVICE_PORT_GRPC", "9000")
	t.Setenv("SERVICE_PORT_HTTP", "")
	t.Setenv("API_KEYS", "secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REAP_INTERVAL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.GRPCPort)
}

func TestLoadConfig_OverrideSERVICE_PORT_HTTP(t *testing.T) {
	t.Setenv("SERVICE_PORT_GRPC", "")
	t.Setenv("SERVICE_PORT_HTTP", "8080")
	t.Setenv("API_KEYS", "secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REAP_INTERVAL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
}

func TestLoadConfig_SplitsAPI_KEYS(t *testing.T) {
	t.Setenv("SERVICE_PORT_GRPC", "")
	t.Setenv("SERVICE_PORT_HTTP", "")
	t.Setenv("API_KEYS", "alpha, beta ,,gamma")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REAP_INTERVAL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, cfg.APIKeys)
}

func TestLoadConfig_OverrideREDIS_ADDR(t *testing.T) {
	t.Setenv("SERVICE_PORT_GRPC", "")
	t.Setenv("SERVICE_PORT_HTTP", "")
	t.Setenv("API_KEYS", "")
	t.Setenv("REDIS_ADDR", "redis://other:6380")
	t.Setenv("REAP_INTERVAL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "redis://other:6380", cfg.RedisAddr)
	assert.Empty(t, cfg.APIKeys)
}

func TestLoadConfig_OverrideREAP_INTERVAL(t *testing.T) {
	t.Setenv("SERVICE_PORT_GRPC", "")
	t.Setenv("SERVICE_PORT_HTTP", "")
	t.Setenv("API_KEYS", "secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REAP_INTERVAL", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.ReapInterval)
}

func TestLoadConfig_InvalidSERVICE_PORT_GRPC(t *testing.T) {
	t.Setenv("SERVICE_PORT_GRPC", "not-a-number")
	t.Setenv("SERVICE_PORT_HTTP", "")
	t.Setenv("API_KEYS", "secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REAP_INTERVAL", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_InvalidREAP_INTERVAL(t *testing.T) {
	t.Setenv("SERVICE_PORT_GRPC", "")
	t.Setenv("SERVICE_PORT_HTTP", "")
	t.Setenv("API_KEYS", "secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REAP_INTERVAL", "invalid")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_NegativeREAP_INTERVAL(t *testing.T) {
	t.Setenv("SERVICE_PORT_GRPC", "")
	t.Setenv("SERVICE_PORT_HTTP", "")
	t.Setenv("API_KEYS", "secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REAP_INTERVAL", "-5s")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_NoKeySource(t *testing.T) {
	t.Setenv("SERVICE_PORT_GRPC", "")
	t.Setenv("SERVICE_PORT_HTTP", "")
	t.Setenv("API_KEYS", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REAP_INTERVAL", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "API_KEYS or REDIS_ADDR is required")
}
