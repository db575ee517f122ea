// Package server wires the peerlink components together and runs them until
// the process is asked to stop: the upload/download HTTP API, the registry of
// one-shot transfer listeners and the gRPC health service.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/peerlink/internal/cryptox"
	"github.com/dmitrijs2005/peerlink/internal/filex"
	"github.com/dmitrijs2005/peerlink/internal/logging"
	"github.com/dmitrijs2005/peerlink/internal/server/config"
	"github.com/dmitrijs2005/peerlink/internal/server/health"
	"github.com/dmitrijs2005/peerlink/internal/server/httpapi"
	"github.com/dmitrijs2005/peerlink/internal/transfer"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	cipher   *cryptox.PortCipher
	store    *filex.Store
	registry *transfer.Registry
	limiter  *httpapi.ConcurrencyLimiter
}

func NewApp(c *config.Config) (*App, error) {

	logger, err := logging.New(os.Stdout, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	key, generated, err := resolveKey(c)
	if err != nil {
		return nil, fmt.Errorf("key init error: %w", err)
	}
	if generated {
		logger.Warn(context.Background(), "no key configured, tokens will not survive a restart")
	}

	cipher, err := cryptox.NewPortCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}

	store, err := filex.NewStore(c.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("upload dir init error: %w", err)
	}

	registry := transfer.NewRegistry(logger,
		transfer.WithHost(c.TransferHost),
		transfer.WithTTL(c.OfferTTL),
		transfer.WithPortQuarantine(max(c.OfferTTL, transfer.DefaultPortQuarantine)),
		transfer.WithFileRemoval(c.RemoveServedFiles),
	)

	return &App{
		config:   c,
		logger:   logger,
		cipher:   cipher,
		store:    store,
		registry: registry,
		limiter:  httpapi.NewConcurrencyLimiter(c.MaxWorkers),
	}, nil
}

// resolveKey picks the token key: an explicit key, then a passphrase, then
// a random one. The bool reports the random case.
func resolveKey(c *config.Config) ([]byte, bool, error) {
	switch {
	case c.AESKey != "":
		key, err := cryptox.KeyFromBase64(c.AESKey)
		return key, false, err
	case c.Passphrase != "":
		return cryptox.DeriveKey([]byte(c.Passphrase), []byte(c.KeySalt)), false, nil
	default:
		key, err := cryptox.RandomKey()
		return key, true, err
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	dialer := &transfer.Dialer{Host: app.config.TransferHost, Timeout: 5 * time.Second}
	h := httpapi.NewHandlers(ctx, app.logger, app.cipher, app.registry, app.store, dialer, int64(app.config.MaxUploadSize))

	s := httpapi.NewServer(app.config.HTTPAddr, httpapi.NewRouter(h, app.limiter), app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHealthServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := health.NewServer(app.config.HealthAddrGRPC, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"http_addr", app.config.HTTPAddr,
		"upload_dir", app.store.Root(),
		"max_workers", app.limiter.Limit())

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.HealthAddrGRPC != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startHealthServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	for _, o := range app.registry.Offers() {
		app.logger.Info(context.Background(), "dropping unclaimed offer", "port", o.Port, "name", o.Name, "age", time.Since(o.CreatedAt))
	}
	app.registry.Close(context.Background())
	stats := app.limiter.Stats()
	app.logger.Info(context.Background(), "App stopped", "requests_handled", stats.Total)
}
