package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository persists accounts.
//
// Create fails with common.ErrorAlreadyExists when the e-mail is taken.
// GetByEmail and GetByID fail with common.ErrorNotFound for unknown rows.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
