// Package server initializes and runs the GophAuth server: the REST API and
// the gRPC health endpoint, with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/httpapi"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/services"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

// runner is a listener that serves until its context is cancelled.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	servers     map[string]runner
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	us := services.NewUserService(db, rm, c)

	return newApp(c, logger, db, us), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, us *services.UserService) *App {
	router := httpapi.NewRouter(us, logger.With("module", "http_api"), c.AllowedOrigins)
	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		userService: us,
		servers: map[string]runner{
			"http": httpapi.NewHTTPServer(c.EndpointAddrHTTP, router, logger),
			"grpc": gs.NewGRPCServer(c.EndpointAddrGRPC, logger),
		},
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts every listener and blocks until they have all stopped. A
// failing listener cancels the others.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	for name, s := range app.servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Run(ctx); err != nil {
				app.logger.Error(ctx, "server failed", "server", name, "error", err)
				cancelFunc()
			}
		}()
	}

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "db close", "error", err)
		}
	}

	app.logger.Info(context.Background(), "App stopped")
}
