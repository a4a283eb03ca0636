package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the Remote Auth API
//	-g string   host:port of the gRPC health endpoint
//	-i int      online check interval (in seconds)
//	-d string   path of the local SQLite store
//	-l string   log file
//	-m string   front-end: repl or tui
//	-n int      toast duration (in milliseconds)
//	-t int      request timeout (in seconds)
//
// os.Args is filtered with flagx.FilterArgs so that -c and other foreign
// flags do not make the parse fail.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-i", "-d", "-l", "-m", "-n", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the auth API")
	fs.StringVar(&cfg.HealthAddr, "g", cfg.HealthAddr, "address and port of the gRPC health endpoint")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "local store file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file")
	fs.StringVar(&cfg.Mode, "m", cfg.Mode, "front-end: repl or tui")
	toastDuration := fs.Int("n", int(cfg.ToastDuration.Milliseconds()), "toast duration (in milliseconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.ToastDuration = time.Duration(*toastDuration) * time.Millisecond
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
