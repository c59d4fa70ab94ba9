// Package config loads settings for the Freshify CLI.
//
// Sources are applied in order, later ones winning: defaults, FRESHIFY_*
// environment variables (and .env), the JSON file named by -c/-config, and
// command-line flags.
package config

import "time"

type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	// CacheDSN is the sqlite database holding the session and the offline
	// inventory snapshot.
	CacheDSN string
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.CacheDSN = "freshify.db"
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
