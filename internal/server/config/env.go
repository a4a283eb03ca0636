package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables honoured by the server.
const (
	EnvDatabaseDSN = "DATABASE_DSN"
	EnvSecretKey   = "JWT_SECRET"
	EnvHTTPAddr    = "HTTP_ADDRESS"
	EnvGRPCAddr    = "GRPC_ADDRESS"
)

// parseEnv loads the dotenv file named by -e/-env (or ./.env when present)
// into the process environment, without overriding variables already set,
// and then copies the known variables into cfg. A missing default .env is
// not an error; a missing explicit one panics.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	setString(&cfg.DatabaseDSN, os.Getenv(EnvDatabaseDSN))
	setString(&cfg.SecretKey, os.Getenv(EnvSecretKey))
	setString(&cfg.EndpointAddrHTTP, os.Getenv(EnvHTTPAddr))
	setString(&cfg.EndpointAddrGRPC, os.Getenv(EnvGRPCAddr))
}
