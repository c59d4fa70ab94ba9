package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/freshify/internal/flagx"
	"github.com/dmitrijs2005/freshify/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// strings such as "90s" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	MetricsAddr                  string         `json:"metrics_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	ImageURLTTL                  timex.Duration `json:"image_url_ttl"`
	AnalysisServiceURL           string         `json:"analysis_service_url"`
	RecipeServiceURL             string         `json:"recipe_service_url"`
	RemoteRate                   float64        `json:"remote_rate"`
	RemoteBurst                  int            `json:"remote_burst"`
	RemoteTimeout                timex.Duration `json:"remote_timeout"`
	RedisAddr                    string         `json:"redis_addr"`
	DeleteOnComplete             *bool          `json:"delete_on_complete"`
	LogLevel                     string         `json:"log_level"`
}

// parseJson overlays the file named by -c/-config. Keys missing from the
// file leave the current value alone. Read or decode errors panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setDuration(&config.ImageURLTTL, c.ImageURLTTL)
	setString(&config.AnalysisServiceURL, c.AnalysisServiceURL)
	setString(&config.RecipeServiceURL, c.RecipeServiceURL)
	if c.RemoteRate > 0 {
		config.RemoteRate = c.RemoteRate
	}
	if c.RemoteBurst > 0 {
		config.RemoteBurst = c.RemoteBurst
	}
	setDuration(&config.RemoteTimeout, c.RemoteTimeout)
	setString(&config.RedisAddr, c.RedisAddr)
	if c.DeleteOnComplete != nil {
		config.DeleteOnComplete = *c.DeleteOnComplete
	}
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
