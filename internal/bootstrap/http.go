package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/teamboard/teamboard/config"
	httpx "github.com/teamboard/teamboard/internal/http"
)

// HTTPServerOptions groups dependencies for StartHTTPServer.
type HTTPServerOptions struct {
	Config   config.HTTPConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer builds the router and starts listening in the background.
// The returned server is used for graceful shutdown.
func StartHTTPServer(opts HTTPServerOptions) (*http.Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handler, err := httpx.NewRouter(httpx.RouterServices{
		Auth:         opts.Services.Auth,
		Dashboard:    opts.Services.Dashboard,
		Team:         opts.Services.Team,
		Activities:   opts.Services.Activities,
		Users:        opts.Services.Users,
		Verifier:     opts.Services.Codec,
		Gate:         opts.Services.Gate,
		CookieDomain: opts.Config.CookieDomain,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	addr := opts.Config.Addr
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server, nil
}

// ShutdownHTTPServer drains in-flight requests before stopping the server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) {
	if server == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		if logger != nil {
			logger.Error("HTTP server shutdown failed", "error", err)
		}
		return
	}
	if logger != nil {
		logger.Info("HTTP server stopped")
	}
}
