package config

import (
	"fmt"
	"time"
)

const (
	ModeREPL = "repl"
	ModeTUI  = "tui"
)

// Config holds runtime settings for the GophAuth client.
//
// Fields:
//   - APIBaseURL: base URL of the Remote Auth API.
//   - HealthAddr: host:port of the server's gRPC health endpoint.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - StorePath: SQLite file backing the persistent key-value store.
//   - LogFile, LogLevel: where and how verbosely the client logs.
//   - Mode: front-end to run, "repl" or "tui".
//   - ToastDuration: how long a toast stays visible.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	APIBaseURL          string
	HealthAddr          string
	OnlineCheckInterval time.Duration
	StorePath           string
	LogFile             string
	LogLevel            string
	Mode                string
	ToastDuration       time.Duration
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.HealthAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.StorePath = "gophauth.db"
	c.LogFile = "client.log"
	c.LogLevel = "info"
	c.Mode = ModeREPL
	c.ToastDuration = 1500 * time.Millisecond
	c.RequestTimeout = 10 * time.Second
}

// Validate reports settings no front-end can run with.
func (c *Config) Validate() error {
	if c.Mode != ModeREPL && c.Mode != ModeTUI {
		return fmt.Errorf("unknown mode %q (want %q or %q)", c.Mode, ModeREPL, ModeTUI)
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("api url is required")
	}
	if c.StorePath == "" {
		return fmt.Errorf("store path is required")
	}
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
