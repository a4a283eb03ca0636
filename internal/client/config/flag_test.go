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

	defaults := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://api:9090", "-g", "api:50052", "-i", "10", "-d", "/tmp/s.db",
				"-l", "/tmp/c.log", "-m", "tui", "-n", "2000", "-t", "5"},
			expected: &Config{
				APIBaseURL:          "http://api:9090",
				HealthAddr:          "api:50052",
				OnlineCheckInterval: 10 * time.Second,
				StorePath:           "/tmp/s.db",
				LogFile:             "/tmp/c.log",
				LogLevel:            "info",
				Mode:                ModeTUI,
				ToastDuration:       2 * time.Second,
				RequestTimeout:      5 * time.Second,
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"cmd", "-c", "conf.json", "-m", "tui"},
			expected: func() *Config { c := defaults(); c.Mode = ModeTUI; return c }(),
		},
		{name: "incorrect check interval", args: []string{"cmd", "-i", "abc"}, expectPanic: true},
		{name: "incorrect toast duration", args: []string{"cmd", "-n", "1.5s"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := defaults()

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
