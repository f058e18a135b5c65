package bootstrap

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/clients/cms"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/clients/legacy"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/mockstore"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/app"
	domainlegacy "github.com/jsamuelsen11/guide-content-pipeline/internal/domain/legacy"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/health"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/httpclient"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/telemetry"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/ports"
)

// Names of the downstream HTTP clients in the container. They double as the
// service names in traces, metrics and readiness results.
const (
	CMSClient    = "cms"
	LegacyClient = "legacy-assets"
)

// ProvideHealth registers the readiness registry.
func ProvideHealth(i do.Injector) {
	do.Provide(i, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}

// ProvideIngestion registers the CMS client, the mock store writer, the
// content fetcher and the ingestion service.
func ProvideIngestion(i do.Injector) {
	do.ProvideNamed(i, CMSClient, func(i do.Injector) (*httpclient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return httpclient.New(&cfg.CMS.Client, CMSClient,
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
			httpclient.WithBearerToken(cfg.CMS.Token),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*mockstore.Writer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return mockstore.NewWriter(cfg.CMS.MockDir), nil
	})

	do.Provide(i, func(i do.Injector) (ports.ContentFetcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cms.NewFetcher(
			do.MustInvokeNamed[*httpclient.Client](i, CMSClient),
			do.MustInvoke[*mockstore.Writer](i),
			cfg.Fetch.PageSize,
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*app.IngestService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return app.NewIngestService(
			do.MustInvoke[ports.ContentFetcher](i),
			do.MustInvoke[*mockstore.Writer](i),
			app.IngestOptions{
				ClientID:     cfg.CMS.ClientID,
				RequestDelay: cfg.Fetch.RequestDelay,
				Concurrency:  cfg.Fetch.Concurrency,
			},
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
}

// ProvideGuides registers the mock store reader, the legacy asset store
// client, the tour resolver and the guide service.
func ProvideGuides(i do.Injector) {
	do.Provide(i, func(i do.Injector) (*mockstore.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return mockstore.Open(cfg.CMS.MockDir)
	})

	do.ProvideNamed(i, LegacyClient, func(i do.Injector) (*httpclient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return httpclient.New(&cfg.Legacy.Client, LegacyClient,
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(i, func(i do.Injector) (ports.LegacyTourClient, error) {
		return legacy.NewClient(
			do.MustInvokeNamed[*httpclient.Client](i, LegacyClient),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*domainlegacy.Resolver, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return domainlegacy.NewResolver(cfg.Legacy.Client.BaseURL, cfg.Legacy.Environment), nil
	})

	do.Provide(i, func(i do.Injector) (ports.GuideService, error) {
		store, err := do.Invoke[*mockstore.Store](i)
		if err != nil {
			return nil, err
		}
		return app.NewGuideService(
			store,
			do.MustInvoke[ports.LegacyTourClient](i),
			do.MustInvoke[*domainlegacy.Resolver](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
}

// ProvidePreload registers the asset preload service. ProvideGuides must
// have been called on the same injector.
func ProvidePreload(i do.Injector) {
	do.Provide(i, func(i do.Injector) (*app.PreloadService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return app.NewPreloadService(
			do.MustInvoke[ports.GuideService](i),
			do.MustInvoke[ports.LegacyTourClient](i),
			app.PreloadOptions{
				OutputDir:   cfg.Preload.OutputDir,
				Concurrency: cfg.Preload.Concurrency,
			},
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
}

// RegisterCheckers adds every already-resolvable downstream to the registry.
// Components that were never provided are skipped.
func RegisterCheckers(i do.Injector, registry ports.HealthRegistry) {
	for _, name := range []string{CMSClient, LegacyClient} {
		if c, err := do.InvokeNamed[*httpclient.Client](i, name); err == nil {
			registry.Register(c)
		}
	}
	if s, err := do.Invoke[*mockstore.Store](i); err == nil {
		registry.Register(s)
	}
}
