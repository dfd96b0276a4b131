// Package server wires the account server together: storage, the mail
// queue, the expiry sweeper and the gRPC transport, and runs them until the
// context is cancelled.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/buildinfo"
	"github.com/dmitrijs2005/gophaccounts/internal/cryptox"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/auth"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/notify"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
	"github.com/dmitrijs2005/gophaccounts/internal/server/sweeper"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gophaccounts/internal/server/grpc"
)

var ErrUnknownMailSender = errors.New("unknown mail sender")

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	queue   *notify.Queue
	sweeper *sweeper.Sweeper
	server  *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if c.SecretKey == "" {
		return nil, errors.New("secret key must not be empty")
	}

	app := &App{config: c, logger: logger}

	var (
		tx dbx.TxRunner
		rm repomanager.RepositoryManager
		h  dbx.DBTX
	)
	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "no database DSN, using the in-memory store")
		tx, rm = dbx.NopRunner{}, repomanager.NewInMemoryRepositoryManager()
	} else {
		db, err := app.connect(ctx)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
		app.db, tx, h = db, dbx.NewSQLRunner(db), db
	}

	sender, err := newSender(ctx, c, logger)
	if err != nil {
		app.close()
		return nil, err
	}
	app.queue = notify.NewQueue(sender, c.MailQueueSize, c.MailWorkers, logger.With("module", "notify"))

	codec := auth.NewCodec([]byte(c.SecretKey))
	hasher := cryptox.NewBcryptHasher(c.BcryptCost)

	ss := services.NewSessionService(tx, rm, codec, hasher, c, logger.With("module", "sessions"))
	as := services.NewAccountService(tx, rm, hasher, app.queue, c, buildinfo.BuildVersion, logger.With("module", "accounts"))

	app.sweeper = sweeper.New(h, rm, c.SweepInterval, logger.With("module", "sweeper"))
	app.server = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, ss, as)

	return app, nil
}

// connect opens the database and waits for it to answer a ping.
func (app *App) connect(ctx context.Context) (*sql.DB, error) {
	db, err := openDB(app.config.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	b := retry.WithMaxRetries(4, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			app.logger.Warn(ctx, "database not ready", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newSender(ctx context.Context, c *config.Config, logger logging.Logger) (notify.Sender, error) {
	switch c.MailSender {
	case "log", "":
		return notify.NewLogSender(logger.With("module", "mail")), nil
	case "ses":
		return notify.NewSESSender(ctx, notify.SESConfig{
			Region:       c.SESRegion,
			AccessKey:    c.SESAccessKey,
			SecretKey:    c.SESSecretKey,
			BaseEndpoint: c.SESBaseEndpoint,
			From:         c.MailFrom,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMailSender, c.MailSender)
	}
}

func (app *App) close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(context.Background(), "closing database", "error", err)
		}
	}
}

// Run serves until ctx is cancelled or one of the components fails.
// Queued mails are drained before Run returns.
func (app *App) Run(ctx context.Context) error {
	defer app.close()

	app.logger.Info(ctx, "Starting app...", "version", buildinfo.BuildVersion, "addr", app.config.EndpointAddrGRPC)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.queue.Run(ctx) })
	g.Go(func() error { return app.sweeper.Run(ctx) })
	g.Go(func() error { return app.server.Run(ctx) })

	err := g.Wait()
	app.logger.Info(context.WithoutCancel(ctx), "App stopped")
	return err
}
