package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "http://127.0.0.1:9090", "-s", "http://demo/users", "-g", "127.0.0.1:50051", "-i", "10"},
			expected: &Config{ServerEndpointAddr: "http://127.0.0.1:9090", DemoSourceURL: "http://demo/users", HealthEndpointAddr: "127.0.0.1:50051", OnlineCheckInterval: 10 * time.Second}},
		{name: "foreign flags are ignored", args: []string{"cmd", "-c", "cfg.json", "-a", "http://x"},
			expected: &Config{ServerEndpointAddr: "http://x"}},
		{name: "incorrect check interval", args: []string{"cmd", "-a", "http://127.0.0.1:9090", "-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
