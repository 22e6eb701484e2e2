package bootstrap

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// RunConfig contains dependencies for Run.
type RunConfig struct {
	Config   *HTTPServerConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// Run starts the HTTP server and blocks until a termination signal
// arrives, then shuts everything down in order: HTTP first, then the
// session machinery.
func Run(ctx context.Context, cfg RunConfig) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := StartHTTPServer(cfg.Config)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		cfg.Logger.Info("shutting down services...")

		// Shutdown context must outlive the canceled group context.
		if err := ShutdownHTTPServer(context.Background(), server, cfg.Logger); err != nil {
			return err
		}
		cfg.Services.Auth.Close()
		return nil
	})

	return g.Wait()
}
