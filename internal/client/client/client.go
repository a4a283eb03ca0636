package client

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, reg models.Registration) (*models.Profile, error)
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error)
	GetUser(ctx context.Context, id int64) (*models.Profile, error)
	// SetAccessToken replaces the bearer sent with every later request on
	// this instance. An empty token sends no Authorization header.
	SetAccessToken(token string)
	Ping(ctx context.Context) error
}
