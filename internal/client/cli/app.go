package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/loading"
	"github.com/dmitrijs2005/gophauth/internal/client/navigation"
	"github.com/dmitrijs2005/gophauth/internal/client/notify"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/tui"
	"github.com/dmitrijs2005/gophauth/internal/filex"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	authService services.AuthService
	notifier    *notify.Center
	nav         *navigation.Navigator
	loading     *loading.Signal
	reader      *bufio.Reader
	out         io.Writer
	closers     []io.Closer

	mu   sync.RWMutex
	mode Mode
}

// NewApp wires config, logger, local store, API client and the session
// facade. The caller must call Close.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	for _, p := range []string{c.LogFile, c.StorePath} {
		if err := filex.EnsureParentDir(p); err != nil {
			return nil, err
		}
	}

	logger, logCloser, err := logging.NewFileLogger(c.LogFile, logging.ParseLevel(c.LogLevel))
	if err != nil {
		return nil, err
	}
	a := &App{
		config:  c,
		log:     logger.With("module", "cli"),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		closers: []io.Closer{logCloser},
	}

	db, err := client.InitDatabase(ctx, c.StorePath)
	if err != nil {
		a.log.Error(ctx, "error initializing database", "error", err)
		_ = a.closeAll()
		return nil, err
	}
	a.closers = append(a.closers, db)

	apiClient, err := client.NewHTTPClient(client.Options{
		BaseURL:    c.APIBaseURL,
		HealthAddr: c.HealthAddr,
		Timeout:    c.RequestTimeout,
	})
	if err != nil {
		_ = a.closeAll()
		return nil, err
	}

	a.notifier = notify.NewCenter(notify.WithDuration(c.ToastDuration))
	a.nav = navigation.New(navigation.PathLogin)
	a.loading = loading.New()
	a.authService = services.NewAuthService(services.Deps{
		Client:   apiClient,
		Store:    metadata.NewStore(db),
		Notifier: a.notifier,
		Nav:      a.nav,
		Loading:  a.loading,
		Log:      logger,
	})

	return a, nil
}

// Run restores the previous session, if any, then blocks in the configured
// front-end until the user quits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close(ctx)

	if err := a.authService.AutoLogin(ctx); err != nil {
		a.log.Debug(ctx, "starting logged out", "error", err)
	}

	if a.config.Mode == config.ModeTUI {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
		return tui.Run(ctx, tui.Deps{
			Auth:     a.authService,
			Nav:      a.nav,
			Notifier: a.notifier,
			Loading:  a.loading,
			Status:   a.currentMode,
		})
	}

	a.Root(ctx)
	return nil
}

// Close releases the API client, the local store and the log file.
func (a *App) Close(ctx context.Context) error {
	var first error
	if a.authService != nil {
		first = a.authService.Close(ctx)
	}
	if err := a.closeAll(); err != nil && first == nil {
		first = err
	}
	return first
}

func (a *App) closeAll() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func (a *App) currentMode() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return string(a.mode)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.CurrentUser() != nil
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode between online and offline until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	check := func() {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := a.authService.Ping(pctx)
		cancel()

		if err != nil {
			a.setMode(ModeOffline)
		} else {
			a.setMode(ModeOnline)
		}
	}

	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			check()
		case <-ctx.Done():
			return
		}
	}
}
