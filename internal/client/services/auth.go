// Package services contains application services for the GophAuth client.
// This file defines the session facade: register, login, logout, startup
// auto-login and the presentational password-visibility flags.
package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/navigation"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// Keys the facade owns in the local store.
const (
	KeyToken = "token"
	KeyID    = "id"
)

// Notifier shows transient messages to the user.
type Notifier interface {
	Success(msg string) int
	Error(msg string) int
}

// Navigator moves between screens.
type Navigator interface {
	Push(path string)
	Replace(path string)
	ReturnPath() string
}

// Loader is the shared busy indicator.
type Loader interface {
	Acquire() (release func())
}

// AuthService is the single point the front-ends use for session state.
//
// Contract:
//   - Register: create an account; never touches the session or the store.
//   - Login: authenticate, persist (token, id), attach the bearer and set the
//     current user.
//   - Logout: drop the session and erase the whole local store.
//   - AutoLogin: restore the session from the store, once per service.
//   - Ping / Close: proxied to the transport.
//
// Register and Login report failures both as a toast and as an *AuthError.
type AuthService interface {
	CurrentUser() *models.Profile
	ReplaceCurrentUser(u *models.Profile)

	PasswordVisibility() Visibility
	TogglePasswordVisibility() Visibility
	SetPasswordVisibility(v Visibility)
	ConfirmPasswordVisibility() Visibility
	ToggleConfirmPasswordVisibility() Visibility
	SetConfirmPasswordVisibility(v Visibility)

	Register(ctx context.Context, reg models.Registration) error
	Login(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context) error
	AutoLogin(ctx context.Context) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Deps are the collaborators of the facade. Log may be nil.
type Deps struct {
	Client   client.Client
	Store    metadata.Repository
	Notifier Notifier
	Nav      Navigator
	Loading  Loader
	Log      logging.Logger
}

type authService struct {
	client   client.Client
	store    metadata.Repository
	notifier Notifier
	nav      Navigator
	loading  Loader
	log      logging.Logger

	mu              sync.RWMutex
	current         *models.Profile
	passwordVis     Visibility
	confirmVis      Visibility
	inFlight        atomic.Bool
	autoLoginOnce   sync.Once
	autoLoginResult error
}

// NewAuthService constructs an AuthService bound to the given collaborators.
func NewAuthService(d Deps) AuthService {
	log := d.Log
	if log == nil {
		log = logging.Nop()
	}
	return &authService{
		client:      d.Client,
		store:       d.Store,
		notifier:    d.Notifier,
		nav:         d.Nav,
		loading:     d.Loading,
		log:         log.With("module", "auth"),
		passwordVis: VisibilityMasked,
		confirmVis:  VisibilityMasked,
	}
}

func (a *authService) CurrentUser() *models.Profile {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// ReplaceCurrentUser overwrites the session without touching the store.
func (a *authService) ReplaceCurrentUser(u *models.Profile) {
	a.mu.Lock()
	a.current = u
	a.mu.Unlock()
}

func (a *authService) PasswordVisibility() Visibility {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.passwordVis
}

func (a *authService) TogglePasswordVisibility() Visibility {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.passwordVis = a.passwordVis.Toggle()
	return a.passwordVis
}

func (a *authService) SetPasswordVisibility(v Visibility) {
	a.mu.Lock()
	a.passwordVis = v
	a.mu.Unlock()
}

func (a *authService) ConfirmPasswordVisibility() Visibility {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.confirmVis
}

func (a *authService) ToggleConfirmPasswordVisibility() Visibility {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.confirmVis = a.confirmVis.Toggle()
	return a.confirmVis
}

func (a *authService) SetConfirmPasswordVisibility(v Visibility) {
	a.mu.Lock()
	a.confirmVis = v
	a.mu.Unlock()
}

// Register sends the form to the API. On success the user is sent to the
// login screen; on failure a toast explains why.
func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	if !a.inFlight.CompareAndSwap(false, true) {
		return ErrOperationInProgress
	}
	defer a.inFlight.Store(false)

	err := reg.Validate()
	if err == nil {
		_, err = a.register(ctx, reg)
	}
	if err != nil {
		ae := newAuthError("register", err)
		a.log.Warn(ctx, "registration rejected", "email", reg.Email, "reason", ae.Reason, "error", err)
		a.notifier.Error(registerMessage(ae.Reason))
		return ae
	}

	a.log.Info(ctx, "registration completed", "email", reg.Email)
	a.notifier.Success(MsgRegistered)
	a.nav.Push(navigation.PathLogin)
	return nil
}

// register holds the loading signal for the remote call only.
func (a *authService) register(ctx context.Context, reg models.Registration) (*models.Profile, error) {
	release := a.loading.Acquire()
	defer release()
	return a.client.Register(ctx, reg)
}

// Login authenticates and, only once the session is persisted, attaches the
// bearer and publishes the user.
func (a *authService) Login(ctx context.Context, creds models.Credentials) error {
	if !a.inFlight.CompareAndSwap(false, true) {
		return ErrOperationInProgress
	}
	defer a.inFlight.Store(false)

	res, err := a.login(ctx, creds)
	if err != nil {
		ae := newAuthError("login", err)
		a.log.Warn(ctx, "login rejected", "email", creds.Email, "reason", ae.Reason, "error", err)
		a.notifier.Error(loginMessage(ae.Reason))
		return ae
	}

	user := res.User
	a.client.SetAccessToken(res.AccessToken)
	a.ReplaceCurrentUser(&user)

	a.log.Info(ctx, "login succeeded", "user_id", user.ID)
	a.notifier.Success(MsgLoggedIn)
	a.nav.Replace(a.nav.ReturnPath())
	return nil
}

func (a *authService) login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	release := a.loading.Acquire()
	defer release()

	res, err := a.client.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	err = a.store.SetMany(ctx, map[string][]byte{
		KeyToken: []byte(res.AccessToken),
		KeyID:    []byte(res.User.StorageID()),
	})
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return res, nil
}

// Logout empties the session and the whole local store. The session is
// cleared even when the store cannot be.
func (a *authService) Logout(ctx context.Context) error {
	a.ReplaceCurrentUser(nil)
	a.client.SetAccessToken("")

	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear local store", "error", err)
		return fmt.Errorf("clear local store: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// AutoLogin restores the session from a stored id and token. It runs once;
// later calls return the first result. Failure falls back to Logout and
// shows nothing to the user.
func (a *authService) AutoLogin(ctx context.Context) error {
	a.autoLoginOnce.Do(func() {
		a.autoLoginResult = a.autoLogin(ctx)
	})
	return a.autoLoginResult
}

func (a *authService) autoLogin(ctx context.Context) error {
	rawID, err := a.store.Get(ctx, KeyID)
	if err != nil {
		a.log.Warn(ctx, "auto-login: cannot read local store", "error", err)
		return a.autoLoginFailed(ctx, err)
	}
	if rawID == nil {
		a.log.Debug(ctx, "auto-login: no stored session")
		return nil
	}

	release := a.loading.Acquire()
	defer release()

	id, err := strconv.ParseInt(string(rawID), 10, 64)
	if err != nil {
		return a.autoLoginFailed(ctx, fmt.Errorf("stored id %q: %w", rawID, err))
	}

	token, err := a.store.Get(ctx, KeyToken)
	if err != nil {
		return a.autoLoginFailed(ctx, err)
	}
	a.client.SetAccessToken(string(token))

	user, err := a.client.GetUser(ctx, id)
	if err != nil {
		return a.autoLoginFailed(ctx, err)
	}

	a.ReplaceCurrentUser(user)
	a.log.Info(ctx, "session restored", "user_id", user.ID)
	return nil
}

func (a *authService) autoLoginFailed(ctx context.Context, err error) error {
	ae := newAuthError("auto-login", err)
	a.log.Warn(ctx, "auto-login failed, session dropped", "reason", ae.Reason, "error", err)
	if lerr := a.Logout(ctx); lerr != nil {
		a.log.Error(ctx, "auto-login: logout failed", "error", lerr)
	}
	return ae
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
