package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/freshify/internal/envx"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "freshify.db", c.CacheDSN)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestApplyEnv(t *testing.T) {
	var c Config
	c.LoadDefaults()

	err := applyEnv(&c, envx.NewFromMap(EnvPrefix, map[string]string{
		"FRESHIFY_CLIENT_SERVER_ADDR":           "10.0.0.1:50051",
		"FRESHIFY_CLIENT_CACHE_DSN":             "file:test.db",
		"FRESHIFY_CLIENT_ONLINE_CHECK_INTERVAL": "7s",
	}))
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "file:test.db", c.CacheDSN)
	assert.Equal(t, 7*time.Second, c.OnlineCheckInterval)

	err = applyEnv(&c, envx.NewFromMap(EnvPrefix, map[string]string{"FRESHIFY_CLIENT_ONLINE_CHECK_INTERVAL": "soon"}))
	var pe *envx.ParseError
	require.ErrorAs(t, err, &pe)
}
