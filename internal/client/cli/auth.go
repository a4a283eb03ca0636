package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for the registration form and submits it. The outcome is
// reported by the facade's toast; the error is returned for the caller.
func (a *App) Register(ctx context.Context) error {
	var reg models.Registration
	var err error

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter email", &reg.Email},
		{"Enter name", &reg.Name},
		{"Enter surname", &reg.Surname},
	}
	for _, f := range fields {
		if *f.dst, err = getSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.reader, "Enter password", a.authService.PasswordVisibility().Masked(), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Repeat password", a.authService.ConfirmPasswordVisibility().Masked(), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	reg.Password = string(password)
	reg.ConfirmPassword = string(confirm)

	if err := a.authService.Register(ctx, reg); err != nil {
		a.log.Debug(ctx, "register command failed", "error", err)
		return err
	}
	printlnFn("Type 'login' to sign in.")
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.authService.PasswordVisibility().Masked(), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.authService.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		a.log.Debug(ctx, "login command failed", "error", err)
		return err
	}
	return nil
}

// Logout drops the session and wipes the local store.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printlnFn("Logged out, but the local store could not be cleared:", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.authService.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> (id %d)", u.DisplayName(), u.Email, u.ID))
	return nil
}

// ToggleShow flips echo for both password prompts together.
func (a *App) ToggleShow(ctx context.Context) error {
	v := a.authService.TogglePasswordVisibility()
	a.authService.SetConfirmPasswordVisibility(v)
	if v == services.VisibilityText {
		printlnFn("Passwords will be shown while typing.")
	} else {
		printlnFn("Passwords will be hidden while typing.")
	}
	return nil
}
