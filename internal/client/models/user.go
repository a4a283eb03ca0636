// Package models holds the client-side shapes exchanged with the Remote Auth
// API. Form shapes (Registration, Credentials) and the session shape (Profile)
// are kept apart so a logged-in session never holds a plaintext password.
package models

import (
	"strconv"

	"github.com/dmitrijs2005/gophauth/internal/validation"
)

// Registration is the create-account form.
type Registration struct {
	Email           string `json:"email" validate:"required,email"`
	Name            string `json:"name" validate:"required"`
	Surname         string `json:"surname" validate:"required"`
	Password        string `json:"password" validate:"required,min=6,maxbytes=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (r Registration) Validate() error {
	return validation.Struct(r)
}

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c Credentials) Validate() error {
	return validation.Struct(c)
}

// Profile is the authenticated account as held in session state.
type Profile struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// StorageID renders the id the way it is written to the local store.
func (p *Profile) StorageID() string {
	return strconv.FormatInt(p.ID, 10)
}

// DisplayName is "Name Surname", or the e-mail when both are empty.
func (p *Profile) DisplayName() string {
	switch {
	case p.Name != "" && p.Surname != "":
		return p.Name + " " + p.Surname
	case p.Name != "":
		return p.Name
	case p.Surname != "":
		return p.Surname
	default:
		return p.Email
	}
}

// LoginResult is the authenticate endpoint response.
type LoginResult struct {
	AccessToken string  `json:"accessToken"`
	User        Profile `json:"user"`
}
