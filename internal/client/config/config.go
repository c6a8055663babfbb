package config

import "time"

// Config holds runtime settings for the directory CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the directory REST API.
//   - DemoSourceURL: URL of the public demo-user feed used by "import".
//   - HealthEndpointAddr: optional host:port of the server's gRPC health
//     endpoint. When empty, reachability is probed over REST.
//   - OnlineCheckInterval: how often the client probes server reachability.
//
// Units: OnlineCheckInterval is a time.Duration (e.g., 3*time.Second).
type Config struct {
	ServerEndpointAddr  string
	DemoSourceURL       string
	HealthEndpointAddr  string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:3000"
	c.DemoSourceURL = "https://dummyjson.com/users"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
