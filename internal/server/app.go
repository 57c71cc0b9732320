// Package server wires configuration, storage, services and the HTTP API
// together and runs them until the process is told to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/dmitrijs2005/employeehub/internal/logging"
	"github.com/dmitrijs2005/employeehub/internal/server/auth"
	"github.com/dmitrijs2005/employeehub/internal/server/blobstore"
	"github.com/dmitrijs2005/employeehub/internal/server/config"
	"github.com/dmitrijs2005/employeehub/internal/server/httpapi"
	"github.com/dmitrijs2005/employeehub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/employeehub/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	server      *httpapi.Server
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)
	ctx := context.Background()

	secret := c.SecretKey
	if secret == "" {
		s, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret generation error: %w", err)
		}
		secret = s
		logger.Warn(ctx, "no secret key configured, using a random one; tokens will not survive a restart")
	}

	var db *sql.DB
	var rm repomanager.RepositoryManager
	if c.DatabaseDSN != "" {
		var err error
		db, err = sqlOpen("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
	} else {
		logger.Warn(ctx, "no database DSN configured, data is kept in memory")
		rm = repomanager.NewInMemoryRepositoryManager()
	}

	var store blobstore.Store
	if c.S3Bucket != "" {
		s3, err := blobstore.NewS3Store(ctx, blobstore.S3Config{
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			URLValidity:  c.PictureURLValidityDuration,
		})
		if err != nil {
			return nil, fmt.Errorf("blob store init error: %w", err)
		}
		store = s3
	} else {
		logger.Warn(ctx, "no bucket configured, profile pictures are disabled")
	}

	tokens := auth.NewTokenIssuer([]byte(secret), c.AccessTokenValidityDuration)
	as := services.NewAccountService(db, rm, auth.NewPasswordHasher(c.PasswordHashCost), tokens, logger)
	es := services.NewEmployeeService(db, rm, store, logger)
	srv := httpapi.NewServer(c.EndpointAddrHTTP, c.AllowedOrigins, logger, as, es, tokens)

	return &App{config: c, logger: logger, db: db, repomanager: rm, server: srv}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run applies migrations and serves until ctx is cancelled or a signal
// arrives.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err)
		app.close(ctx)
		return
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(ctx)
	app.logger.Info(ctx, "App stopped")
}

func (app *App) close(ctx context.Context) {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err)
	}
}
