// Package server initializes and runs the message index server.
// It wires the pointer storage, the identity gateway, the notification
// dispatcher and the HTTP API, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/splitchat/splitchat/internal/logging"
	"github.com/splitchat/splitchat/internal/server/config"
	"github.com/splitchat/splitchat/internal/server/httpapi"
	"github.com/splitchat/splitchat/internal/server/identity"
	"github.com/splitchat/splitchat/internal/server/notify"
	"github.com/splitchat/splitchat/internal/server/repositories/repomanager"
	"github.com/splitchat/splitchat/internal/server/services"
	"github.com/splitchat/splitchat/internal/vault"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	handler    http.Handler
	dispatcher *notify.Dispatcher
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	vaultClient := vault.New(cfg.VaultEndpoint, "")

	gateway := identity.NewGateway(vaultClient)
	messageService := services.NewMessageService(db, rm)
	dispatcher := notify.NewDispatcher(vaultClient, notify.Config{
		ProviderAccountSID: cfg.TwilioAccountSID,
		ProviderKeySID:     cfg.TwilioKeySID,
		ProviderKeySecret:  cfg.TwilioKeySecret,
		FromNumber:         cfg.TwilioFromNumber,
		LinkBase:           cfg.ConversationLinkBase,
		Timeout:            cfg.NotifyTimeout,
	}, logger)

	handler := httpapi.NewRouter(gateway, messageService, dispatcher, cfg.CORSOrigin, logger)

	return &App{config: cfg, logger: logger, db: db, handler: handler, dispatcher: dispatcher}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			app.logger.Error(ctx, err.Error())
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, err.Error())
		}
	}

	// let in-flight notifications drain before exiting
	app.dispatcher.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
