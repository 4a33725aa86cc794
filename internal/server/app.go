// Package server wires the storage backend, the services, the expiry
// sweeper and the gRPC transport together and runs them until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/logging"
	"github.com/dmitrijs2005/vaultshare/internal/server/archive"
	"github.com/dmitrijs2005/vaultshare/internal/server/config"
	"github.com/dmitrijs2005/vaultshare/internal/server/notify"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/memory"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vaultshare/internal/server/services"

	gs "github.com/dmitrijs2005/vaultshare/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB // nil for the memory store
	grpc    *gs.GRPCServer
	sweeper *services.ExpirySweeper
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) { return sql.Open("pgx", dsn) }

// NewApp builds every component from c. Log output goes to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger := logging.NewJSON(w, c.LogLevel)

	var (
		repos repomanager.RepositoryManager
		tx    dbx.Transactor
		db    *sql.DB
	)
	switch c.Store {
	case config.StoreMemory:
		repos = repomanager.NewMemoryRepositoryManager(memory.NewStore())
		tx = dbx.Passthrough{}
	default:
		var err error
		db, err = openDB(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		pg := repomanager.NewPostgresRepositoryManager()
		if err := pg.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db migrate error: %w", err)
		}
		repos = pg
		tx = dbx.NewSQLTransactor(db, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	}

	var arch archive.Archive = archive.Disabled{}
	if c.ArchiveEnabled {
		s3, err := archive.NewS3Archive(ctx, archive.S3Config{
			User:      c.S3RootUser,
			Password:  c.S3RootPassword,
			Bucket:    c.S3Bucket,
			Region:    c.S3Region,
			Endpoint:  c.S3BaseEndpoint,
			URLExpiry: c.ArchiveURLExpiry,
		})
		if err != nil {
			if db != nil {
				_ = db.Close()
			}
			return nil, fmt.Errorf("archive init error: %w", err)
		}
		arch = s3
	}

	hub := notify.NewHub(c.NotifyBuffer)
	opts := []services.Option{services.WithDefaultTTL(c.DefaultShareTTL)}

	svc := gs.Services{
		Vaults:    services.NewVaultService(tx, repos, arch, logger, opts...),
		Shares:    services.NewShareService(tx, repos, hub, logger, opts...),
		Contacts:  services.NewContactShareService(tx, repos, hub, logger, opts...),
		Directory: services.NewShareDirectory(tx, repos),
		Accounts:  services.NewAccountService(tx, repos, logger),
		Hub:       hub,
	}

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		grpc:    gs.NewGRPCServer(c.EndpointAddrGRPC, logger, svc, c.SecretKey),
		sweeper: services.NewExpirySweeper(tx, repos, hub, logger, opts...),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run blocks until ctx is cancelled, a signal arrives or the gRPC server
// fails. It returns the server error, if any.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "store", app.config.Store, "archive", app.config.ArchiveEnabled)
	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.sweeper.Run(ctx, app.config.SweepInterval)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.grpc.Run(ctx); err != nil {
			app.logger.Error(ctx, "grpc server failed", "error", err)
			runErr = err
			cancelFunc()
		}
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(context.Background(), "db close error", "error", err)
		}
	}
	app.logger.Info(context.Background(), "App stopped")
	return runErr
}
