package config

import (
	"errors"

	"github.com/dmitrijs2005/freshify/internal/envx"
)

const EnvPrefix = "FRESHIFY_"

// parseEnv overlays FRESHIFY_* variables, reading .env first when present.
// Malformed values panic, as with the JSON file.
func parseEnv(config *Config) {
	if err := envx.LoadDotEnv(); err != nil {
		panic(err)
	}
	if err := applyEnv(config, envx.New(EnvPrefix)); err != nil {
		panic(err)
	}
}

func applyEnv(c *Config, src *envx.Source) error {
	src.String("GRPC_ADDR", &c.EndpointAddrGRPC)
	src.String("METRICS_ADDR", &c.MetricsAddr)
	src.String("DATABASE_DSN", &c.DatabaseDSN)
	src.String("SECRET_KEY", &c.SecretKey)
	src.String("S3_USER", &c.S3RootUser)
	src.String("S3_PASSWORD", &c.S3RootPassword)
	src.String("S3_BUCKET", &c.S3Bucket)
	src.String("S3_REGION", &c.S3Region)
	src.String("S3_ENDPOINT", &c.S3BaseEndpoint)
	src.String("ANALYSIS_URL", &c.AnalysisServiceURL)
	src.String("RECIPE_URL", &c.RecipeServiceURL)
	src.String("REDIS_ADDR", &c.RedisAddr)
	src.String("LOG_LEVEL", &c.LogLevel)

	return errors.Join(
		src.Duration("ACCESS_TOKEN_TTL", &c.AccessTokenValidityDuration),
		src.Duration("REFRESH_TOKEN_TTL", &c.RefreshTokenValidityDuration),
		src.Duration("IMAGE_URL_TTL", &c.ImageURLTTL),
		src.Duration("REMOTE_TIMEOUT", &c.RemoteTimeout),
		src.Float("REMOTE_RATE", &c.RemoteRate),
		src.Int("REMOTE_BURST", &c.RemoteBurst),
		src.Bool("DELETE_ON_COMPLETE", &c.DeleteOnComplete),
	)
}
