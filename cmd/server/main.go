// Package main is the entry point for the guide API. It wires all
// dependencies using samber/do v2, serves guides from the mock store and the
// legacy asset store, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/http"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/mockstore"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/bootstrap"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/telemetry"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rt, err := bootstrap.Start(context.Background(), os.Getenv(bootstrap.ProfileEnv), os.Stderr)
	if err != nil {
		return err
	}
	logger := rt.Logger

	bootstrap.ProvideHealth(rt.Injector)
	bootstrap.ProvideGuides(rt.Injector)
	registerHTTP(rt.Injector)

	// Resolve the server (eagerly wires the full graph, opening the store).
	server, err := do.Invoke[*adapthttp.Server](rt.Injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](rt.Injector)
	bootstrap.RegisterCheckers(rt.Injector, registry)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := rt.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerHTTP(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*handlers.GuideHandler, error) {
		svc, err := do.Invoke[ports.GuideService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewGuideHandler(svc), nil
	})

	do.Provide(injector, func(_ do.Injector) (*handlers.SchemaHandler, error) {
		return handlers.NewSchemaHandler()
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), mockstore.CheckerName), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		guides, err := do.Invoke[*handlers.GuideHandler](i)
		if err != nil {
			return nil, err
		}
		schema, err := do.Invoke[*handlers.SchemaHandler](i)
		if err != nil {
			return nil, err
		}
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(guides, schema, do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		cfg := do.MustInvoke[*config.Config](i)
		return adapthttp.NewServer(cfg.Server, handler, do.MustInvoke[*slog.Logger](i)), nil
	})
}
