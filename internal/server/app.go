// Package server wires the directory server together: it opens and migrates
// the store, sets up the list cache, and runs the REST API and the gRPC
// health endpoint until the process is signalled to stop.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/dbx"
	"github.com/dmitrijs2005/userdirectory/internal/logging"
	"github.com/dmitrijs2005/userdirectory/internal/server/cache"
	"github.com/dmitrijs2005/userdirectory/internal/server/config"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userdirectory/internal/server/rest"
	"github.com/dmitrijs2005/userdirectory/internal/server/services"
	"github.com/dmitrijs2005/userdirectory/internal/server/snapshot"

	gs "github.com/dmitrijs2005/userdirectory/internal/server/grpc"
)

const startupTimeout = 10 * time.Second

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	cache     cache.ListCache
	directory *services.DirectoryService
}

func NewApp(c *config.Config) (*App, error) {

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSON(os.Stdout, level)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	rm, err := repomanager.NewRepositoryManager(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := dbx.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	lc := newListCache(ctx, c, logger)

	return &App{
		config:    c,
		logger:    logger,
		db:        db,
		cache:     lc,
		directory: services.NewDirectoryService(db, rm, lc, logger),
	}, nil
}

// newListCache connects to Redis when configured. An unreachable Redis only
// disables caching.
func newListCache(ctx context.Context, c *config.Config, logger logging.Logger) cache.ListCache {
	if c.RedisAddr == "" {
		return cache.NopListCache{}
	}
	rc, err := cache.NewRedisListCache(ctx, c.RedisAddr, c.ListCacheTTL)
	if err != nil {
		logger.Warn(ctx, "list cache disabled", "error", err)
		return cache.NopListCache{}
	}
	return rc
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

func (app *App) startRESTServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(fmt.Sprintf(":%d", app.config.Port), app.directory, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.directory, app.config.HealthCheckInterval)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives, or one
// of the servers fails. Resources are released before it returns.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startRESTServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrGRPC != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}

// Snapshot exports the directory to object storage and returns the key.
func (app *App) Snapshot(ctx context.Context) (string, error) {
	return snapshot.NewExporter(app.directory, app.config, app.logger).Export(ctx)
}

func (app *App) Close() error {
	return errors.Join(app.cache.Close(), app.db.Close())
}
