package config

import "github.com/dmitrijs2005/freshify/internal/envx"

const EnvPrefix = "FRESHIFY_CLIENT_"

func parseEnv(cfg *Config) {
	if err := envx.LoadDotEnv(); err != nil {
		panic(err)
	}
	if err := applyEnv(cfg, envx.New(EnvPrefix)); err != nil {
		panic(err)
	}
}

func applyEnv(c *Config, src *envx.Source) error {
	src.String("SERVER_ADDR", &c.ServerEndpointAddr)
	src.String("CACHE_DSN", &c.CacheDSN)
	return src.Duration("ONLINE_CHECK_INTERVAL", &c.OnlineCheckInterval)
}
