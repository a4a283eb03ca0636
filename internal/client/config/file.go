package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// FileConfig is a DTO used exclusively for decoding config files. Intervals
// use timex.Duration so files can say "3s" or "1500ms".
type FileConfig struct {
	APIBaseURL          string         `json:"api_base_url" toml:"api_base_url"`
	HealthAddr          string         `json:"health_addr" toml:"health_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" toml:"online_check_interval"`
	StorePath           string         `json:"store_path" toml:"store_path"`
	LogFile             string         `json:"log_file" toml:"log_file"`
	LogLevel            string         `json:"log_level" toml:"log_level"`
	Mode                string         `json:"mode" toml:"mode"`
	ToastDuration       timex.Duration `json:"toast_duration" toml:"toast_duration"`
	RequestTimeout      timex.Duration `json:"request_timeout" toml:"request_timeout"`
}

// parseFile overlays Config with the values set in the file named by -c or
// -config. Files ending in .toml are decoded as TOML, anything else as JSON.
// Keys missing from the file keep their current value. Panics on read or
// decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			panic(err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			panic(err)
		}
		if err := json.Unmarshal(data, &fc); err != nil {
			panic(err)
		}
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.HealthAddr, fc.HealthAddr)
	setString(&cfg.StorePath, fc.StorePath)
	setString(&cfg.LogFile, fc.LogFile)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.Mode, fc.Mode)

	if fc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.ToastDuration.Duration > 0 {
		cfg.ToastDuration = fc.ToastDuration.Duration
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
