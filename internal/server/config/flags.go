package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-p int      REST API port
//	-t string   database driver ("pgx" or "sqlite")
//	-d string   database DSN
//	-g string   gRPC health endpoint address ("" disables)
//	-r string   Redis address for the list cache ("" disables)
//	-l int      list cache TTL, seconds
//	-i int      database health check interval, seconds
//	-u string   S3 root user
//	-w string   S3 root password
//	-b string   S3 bucket
//	-e string   S3 base endpoint
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-p", "-t", "-d", "-g", "-r", "-l", "-i", "-u", "-w", "-b", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.IntVar(&config.Port, "p", config.Port, "port to run the REST API on")
	fs.StringVar(&config.DatabaseDriver, "t", config.DatabaseDriver, "database driver (pgx or sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health endpoint address")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address for the list cache")

	listCacheTTL := fs.Int("l", int(config.ListCacheTTL.Seconds()), "list cache TTL (in seconds)")
	healthCheckInterval := fs.Int("i", int(config.HealthCheckInterval.Seconds()), "health check interval (in seconds)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "w", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ListCacheTTL = time.Duration(*listCacheTTL) * time.Second
	config.HealthCheckInterval = time.Duration(*healthCheckInterval) * time.Second
}
