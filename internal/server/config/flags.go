package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/freshify/internal/flagx"
)

// parseFlags applies the short command-line flags:
//
//	-a  gRPC bind address          -m  metrics bind address
//	-d  PostgreSQL DSN             -s  JWT secret
//	-t  access token TTL, minutes  -r  refresh token TTL, minutes
//	-u  S3 user                    -p  S3 password
//	-b  S3 bucket                  -g  S3 region
//	-e  S3 endpoint                -n  analysis service URL
//	-x  recipe service URL         -k  Redis address
//	-l  log level                  -o  delete rows on completion (-o=false keeps them)
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-n", "-x", "-k", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address for the /metrics endpoint")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshTokenValidity := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.AnalysisServiceURL, "n", config.AnalysisServiceURL, "analysis service base URL")
	fs.StringVar(&config.RecipeServiceURL, "x", config.RecipeServiceURL, "recipe service base URL")
	fs.StringVar(&config.RedisAddr, "k", config.RedisAddr, "redis address, empty for in-memory cache")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.DeleteOnComplete, "o", config.DeleteOnComplete, "delete completed items instead of keeping them")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidity) * time.Minute
}
