// Package bootstrap is the composition root shared by the commands. It loads
// configuration, builds the logger and telemetry providers, and registers
// the adapters and services with a samber/do container.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/logging"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/telemetry"
)

// ProfileEnv names the environment variable selecting the config profile.
const ProfileEnv = "APP_PROFILE"

// Runtime bundles what every command needs before wiring its own graph.
type Runtime struct {
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *telemetry.Metrics
	Injector *do.RootScope

	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// Start loads the profile's configuration, creates the logger writing to
// logOut, initializes telemetry and seeds a DI container with all three.
func Start(ctx context.Context, profile string, logOut io.Writer, opts ...config.Option) (*Runtime, error) {
	if profile == "" {
		return nil, fmt.Errorf("%s environment variable is required (e.g. local, dev, qa, prod)", ProfileEnv)
	}

	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)

	rt := &Runtime{Config: cfg, Logger: logger}
	if err := rt.initTelemetry(ctx); err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	rt.Injector = do.New()
	do.ProvideValue(rt.Injector, cfg)
	do.ProvideValue(rt.Injector, logger)
	do.ProvideValue(rt.Injector, rt.Metrics)

	return rt, nil
}

// Shutdown flushes both telemetry providers. Nil-safe.
func (rt *Runtime) Shutdown(ctx context.Context) error {
	var errs []error
	if rt.tracer != nil {
		if err := rt.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if rt.meter != nil {
		if err := rt.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// initTelemetry leaves the providers nil and installs no-op metrics when
// telemetry is disabled.
func (rt *Runtime) initTelemetry(ctx context.Context) error {
	cfg := rt.Config.Telemetry
	if !cfg.Enabled {
		rt.Metrics = telemetry.NewNoopMetrics()
		return nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return fmt.Errorf("creating metrics: %w", err)
	}

	rt.tracer = tp
	rt.meter = mp
	rt.Metrics = metrics
	return nil
}
