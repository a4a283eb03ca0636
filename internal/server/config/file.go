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

// FileConfig is a DTO used exclusively for decoding config files.
type FileConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http" toml:"endpoint_addr_http"`
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc" toml:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn" toml:"database_dsn"`
	SecretKey                   string         `json:"secret_key" toml:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration" toml:"access_token_validity_duration"`
	AllowedOrigins              []string       `json:"allowed_origins" toml:"allowed_origins"`
	LogLevel                    string         `json:"log_level" toml:"log_level"`
}

// parseFile overlays Config with the file named by -c or -config. Files
// ending in .toml are decoded as TOML, anything else as JSON. Panics on read
// or decode errors.
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

	setString(&cfg.EndpointAddrHTTP, fc.EndpointAddrHTTP)
	setString(&cfg.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setString(&cfg.SecretKey, fc.SecretKey)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.AccessTokenValidityDuration.Duration > 0 {
		cfg.AccessTokenValidityDuration = fc.AccessTokenValidityDuration.Duration
	}
	if len(fc.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = fc.AllowedOrigins
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
