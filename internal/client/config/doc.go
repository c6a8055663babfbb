// Package config loads runtime configuration for the directory CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the directory API
//	-s string   demo data source URL
//	-g string   gRPC health endpoint (host:port), optional
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "http://localhost:3000",
//	  "demo_source_url": "https://dummyjson.com/users",
//	  "health_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s"
//	}
package config
