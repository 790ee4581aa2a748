// Package server wires configuration, storage, services and the HTTP API
// into a runnable application.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/fruitie/internal/logging"
	"github.com/dmitrijs2005/fruitie/internal/server/assistant"
	"github.com/dmitrijs2005/fruitie/internal/server/config"
	"github.com/dmitrijs2005/fruitie/internal/server/httpapi"
	"github.com/dmitrijs2005/fruitie/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fruitie/internal/server/services"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *httpapi.HTTPServer
	closers    []io.Closer
}

// newReplier picks Gemini when a key is configured, canned answers otherwise.
func newReplier(ctx context.Context, c *config.Config, l logging.Logger) (assistant.Replier, error) {
	if c.GenAIAPIKey == "" {
		l.Warn(ctx, "GEMINI_API_KEY not set, assistant answers from canned replies")
		return assistant.CannedReplier{}, nil
	}
	return assistant.NewGeminiReplier(ctx, c.GenAIAPIKey, c.GenAIModel)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	w, logCloser := logging.NewWriter(c.LogFile)
	logger := logging.NewJSONLogger(w, slog.LevelInfo)

	db, m, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	fail := func(err error) (*App, error) {
		_ = db.Close()
		_ = logCloser.Close()
		return nil, err
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		return fail(fmt.Errorf("migrations error: %w", err))
	}
	logger.Info(ctx, "Database ready", "dialect", string(m.Dialect()))

	store, err := services.NewCredentialStore(db, m, c.BcryptCost)
	if err != nil {
		return fail(err)
	}

	replier, err := newReplier(ctx, c, logger)
	if err != nil {
		return fail(fmt.Errorf("assistant init error: %w", err))
	}

	us := services.NewUserService(db, m, store, c)
	cs := services.NewChatService(replier, c.ReplyTimeout, logger.With("module", "chat"))

	return &App{
		config:     c,
		logger:     logger,
		db:         db,
		httpServer: httpapi.NewHTTPServer(c.HTTPAddr, logger, us, cs, c.AllowedOrigins),
		closers:    []io.Closer{db, logCloser},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until a termination signal arrives or ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	err := app.httpServer.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "http server failed", "error", err)
	}

	for _, c := range app.closers {
		_ = c.Close()
	}

	app.logger.Info(context.Background(), "App stopped")
	return err
}
