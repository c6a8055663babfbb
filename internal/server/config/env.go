package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// dotenvFile is the file consulted for environment defaults. Variables
// already present in the process environment take precedence over it.
var dotenvFile = ".env"

// parseEnv overlays config with PORT, DATABASE_DRIVER, DATABASE_DSN,
// GRPC_ADDR, REDIS_ADDR and LOG_LEVEL. A missing .env file is not an error; an
// unparsable PORT panics like any other invalid setting.
func parseEnv(config *Config) {
	if _, err := os.Stat(dotenvFile); err == nil {
		if err := godotenv.Load(dotenvFile); err != nil {
			panic(fmt.Errorf("load %s: %w", dotenvFile, err))
		}
	}

	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("invalid PORT %q: %w", v, err))
		}
		config.Port = port
	}
	if v, ok := os.LookupEnv("DATABASE_DRIVER"); ok && v != "" {
		config.DatabaseDriver = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("GRPC_ADDR"); ok {
		config.EndpointAddrGRPC = v
	}
	if v, ok := os.LookupEnv("REDIS_ADDR"); ok {
		config.RedisAddr = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
}
