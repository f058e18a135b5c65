package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/app/fanout"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/logging"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/ports"
)

// IngestOptions tunes an ingestion run.
type IngestOptions struct {
	// ClientID is recorded in the manifest.
	ClientID string

	// RequestDelay is the minimum spacing between two CMS requests.
	RequestDelay time.Duration

	// Concurrency caps how many languages of one resource are fetched at
	// once. Values below 2 fetch languages one at a time, in order.
	Concurrency int
}

// IngestService mirrors CMS resources into the mock store through the
// ContentFetcher port and records what was written in a manifest.
type IngestService struct {
	fetcher   ports.ContentFetcher
	manifests ports.ManifestWriter
	opts      IngestOptions
	logger    *slog.Logger
	now       func() time.Time
}

// NewIngestService creates an IngestService. A nil logger discards output.
func NewIngestService(fetcher ports.ContentFetcher, manifests ports.ManifestWriter, opts IngestOptions, logger *slog.Logger) *IngestService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &IngestService{
		fetcher:   fetcher,
		manifests: manifests,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
	}
}

// Run fetches every (endpoint, language) pair. Endpoints are processed in
// order; a failed pair never stops its siblings. The returned report is
// complete even when err is non-nil. err is set only when the context ends
// early or the manifest cannot be written.
func (s *IngestService) Run(ctx context.Context, endpoints []domain.Endpoint, languages []string) (*domain.BatchReport, error) {
	report := &domain.BatchReport{RunID: uuid.NewString(), Items: []domain.ItemReport{}}
	ctx = logging.With(logging.WithLogger(ctx, s.logger), slog.String("run_id", report.RunID))
	logger := logging.FromContext(ctx)

	logger.InfoContext(ctx, "starting content ingestion",
		slog.Int("resources", len(endpoints)),
		slog.Any("languages", languages),
		slog.Duration("request_delay", s.opts.RequestDelay),
		slog.Int("concurrency", s.opts.Concurrency),
	)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if s.opts.RequestDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(s.opts.RequestDelay), 1)
	}

	manifest := &domain.Manifest{
		RunID:    report.RunID,
		ClientID: s.opts.ClientID,
		Entries:  []domain.ManifestEntry{},
	}

	for _, ep := range endpoints {
		results := fanout.Run(ctx, s.opts.Concurrency, languages,
			func(ctx context.Context, lang string) (domain.FetchResult, error) {
				if err := limiter.Wait(ctx); err != nil {
					return domain.Failed(fmt.Errorf("waiting to fetch %s/%s: %w", ep.SuiteID, lang, err)), nil
				}
				return s.fetcher.Fetch(ctx, ep, lang), nil
			})

		for i, r := range results {
			res := r.Value
			if r.Err != nil {
				res = domain.Failed(r.Err)
			}
			report.Add(ep, languages[i], res)
			if res.Status == domain.FetchSucceeded {
				manifest.Entries = append(manifest.Entries, domain.ManifestEntry{
					ClientID: s.opts.ClientID,
					SuiteID:  ep.SuiteID,
					Language: languages[i],
					Path:     res.Path,
				})
			}
		}
	}

	logger.InfoContext(ctx, "content ingestion finished",
		slog.Int("total", report.Total),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("ingestion interrupted: %w", err)
	}

	if s.manifests != nil {
		manifest.GeneratedAt = s.now().UTC()
		if err := s.manifests.WriteManifest(manifest); err != nil {
			logger.ErrorContext(ctx, "failed to write manifest",
				slog.String("operation", "Run"),
				slog.Any("error", err),
			)
			return report, fmt.Errorf("writing manifest: %w", err)
		}
	}

	return report, nil
}
