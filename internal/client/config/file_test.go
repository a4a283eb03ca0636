package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	jsonPath := writeTemp(t, "cfg.json", `{
		"api_base_url": "http://www.example:9000",
		"online_check_interval": "10s",
		"toast_duration": 2000000000,
		"mode": "tui"
	}`)
	tomlPath := writeTemp(t, "cfg.toml", `
api_base_url = "http://toml.example"
health_addr = "toml.example:50051"
request_timeout = "30s"
log_level = "debug"
`)

	t.Run("json via -config", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", jsonPath}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "http://www.example:9000", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, 2*time.Second, cfg.ToastDuration)
		assert.Equal(t, ModeTUI, cfg.Mode)
		assert.Equal(t, "127.0.0.1:50051", cfg.HealthAddr, "missing keys keep their value")
	})

	t.Run("toml via -c", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", tomlPath}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "http://toml.example", cfg.APIBaseURL)
		assert.Equal(t, "toml.example:50051", cfg.HealthAddr)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, ModeREPL, cfg.Mode)
	})

	t.Run("no file, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "defaults", OnlineCheckInterval: 42 * time.Second}
		parseFile(cfg)

		assert.Equal(t, "defaults", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("flags win over file", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", jsonPath, "-a", "http://flag"}

		cfg := LoadConfig()
		assert.Equal(t, "http://flag", cfg.APIBaseURL)
		assert.Equal(t, ModeTUI, cfg.Mode)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		assert.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("bad json panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", writeTemp(t, "bad.json", `{`)}
		assert.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("bad toml duration panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", writeTemp(t, "bad.toml", `toast_duration = "soon"`)}
		assert.Panics(t, func() { parseFile(&Config{}) })
	})
}
