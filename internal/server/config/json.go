package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdirectory/internal/flagx"
	"github.com/dmitrijs2005/userdirectory/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations accept
// either strings such as "30s" or integer nanoseconds.
type JsonConfig struct {
	Port                *int           `json:"port"`
	DatabaseDriver      string         `json:"database_driver"`
	DatabaseDSN         string         `json:"database_dsn"`
	EndpointAddrGRPC    string         `json:"endpoint_addr_grpc"`
	RedisAddr           string         `json:"redis_addr"`
	ListCacheTTL        timex.Duration `json:"list_cache_ttl"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
	LogLevel            string         `json:"log_level"`
	S3RootUser          string         `json:"s3_root_user"`
	S3RootPassword      string         `json:"s3_root_password"`
	S3Bucket            string         `json:"s3_bucket"`
	S3Region            string         `json:"s3_region"`
	S3BaseEndpoint      string         `json:"s3_base_endpoint"`
}

// parseJson overlays config with the file named by -c/-config. Only keys that
// are present in the file override the current values. A missing or invalid
// file panics.
func parseJson(config *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var c JsonConfig
	if err := json.Unmarshal(data, &c); err != nil {
		panic(err)
	}

	if c.Port != nil {
		config.Port = *c.Port
	}
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.RedisAddr, c.RedisAddr)
	if c.ListCacheTTL.Duration != 0 {
		config.ListCacheTTL = c.ListCacheTTL.Duration
	}
	if c.HealthCheckInterval.Duration != 0 {
		config.HealthCheckInterval = c.HealthCheckInterval.Duration
	}
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
