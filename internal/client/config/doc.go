// Package config loads runtime configuration for the GophAuth client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via -c or -config.
//     Files ending in .toml are TOML, anything else JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Remote Auth API
//	-g string   address:port of the gRPC health endpoint
//	-i int      online status check interval (seconds)
//	-d string   local SQLite store path
//	-l string   log file
//	-m string   front-end (repl | tui)
//	-n int      toast duration (milliseconds)
//	-t int      request timeout (seconds)
//
// # File schema
//
// Intervals use timex.Duration, so they can be strings like "3s" or, in JSON,
// integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080",
//	  "health_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "mode": "tui",
//	  "toast_duration": "1500ms"
//	}
package config
