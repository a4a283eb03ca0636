// Package services contains server-side business logic. This file implements
// UserService, which handles registration, password login, issuing access
// tokens and profile lookups.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// Session is a successful login: the signed access token and the account.
type Session struct {
	AccessToken string
	User        *models.User
}

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
	dummyHash                   []byte
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return newUserService(db, m, cfg, bcrypt.DefaultCost)
}

func newUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, cost int) *UserService {
	// compared against when the e-mail is unknown so both paths cost the same
	dummy, _ := bcrypt.GenerateFromPassword([]byte("gophauth-dummy-password"), cost)
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cost,
		dummyHash:                   dummy,
	}
}

// Register creates an account. A taken e-mail yields common.ErrorAlreadyExists,
// a password bcrypt cannot hash yields common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, email, name, surname, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password longer than %d bytes", common.ErrorValidation, validation.PasswordMaxBytes)
		}
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Email:        strings.TrimSpace(email),
		Name:         name,
		Surname:      surname,
		PasswordHash: hash,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login checks the password and issues an access token. Unknown e-mails and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Session{AccessToken: token, User: user}, nil
}

// GetUser returns the account with the given id or common.ErrorNotFound.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// Authenticate resolves an access token to its user id.
func (s *UserService) Authenticate(token string) (int64, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}
