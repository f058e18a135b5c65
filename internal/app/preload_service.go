package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/pretty"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/app/fanout"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/app/progress"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/telemetry"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/ports"
)

// Asset kinds reported in metrics.
const (
	AssetAudio    = "audio"
	AssetSubtitle = "subtitle"
	AssetImage    = "image"
)

// GuideFile is the name of the guide view written next to preloaded assets.
const GuideFile = "guide.json"

// PreloadOptions tunes an asset preload.
type PreloadOptions struct {
	// OutputDir receives one directory per guide slug.
	OutputDir string

	// Concurrency caps simultaneous downloads.
	Concurrency int
}

// PreloadService downloads every asset of one guide for offline use.
type PreloadService struct {
	guides  ports.GuideService
	tours   ports.LegacyTourClient
	opts    PreloadOptions
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

type guideAsset struct {
	kind string
	url  string
	dest string
}

// NewPreloadService creates a PreloadService. metrics may be nil; a nil
// logger discards output.
func NewPreloadService(guides ports.GuideService, tours ports.LegacyTourClient, opts PreloadOptions, metrics *telemetry.Metrics, logger *slog.Logger) *PreloadService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &PreloadService{
		guides:  guides,
		tours:   tours,
		opts:    opts,
		metrics: metrics,
		logger:  logger,
	}
}

// Preload loads the guide, writes its view to <dir>/guide.json and downloads
// its audio, subtitle and image assets beneath <dir>, where dir is the
// slug's directory under the output root. Failed assets are listed in the
// report and do not fail the call. onProgress may be nil.
func (s *PreloadService) Preload(ctx context.Context, language, slug string, onProgress progress.Func) (*domain.PreloadReport, error) {
	view, err := s.guides.GetGuide(ctx, language, slug)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.opts.OutputDir, slug)
	if err := writeGuideView(dir, view); err != nil {
		return nil, err
	}

	assets := collectAssets(view, dir)
	report := &domain.PreloadReport{
		Slug:      slug,
		Language:  view.Language,
		Directory: dir,
		Total:     len(assets),
		Failed:    []domain.AssetFailure{},
	}

	s.logger.InfoContext(ctx, "preloading guide assets",
		slog.String("slug", slug),
		slog.String("language", view.Language),
		slog.Int("assets", len(assets)),
		slog.Int("concurrency", s.opts.Concurrency),
	)

	tracker := progress.New(len(assets), onProgress)
	results := fanout.Run(ctx, s.opts.Concurrency, assets, func(ctx context.Context, a guideAsset) (struct{}, error) {
		err := s.download(ctx, a)
		tracker.Done()
		return struct{}{}, err
	})

	for i, r := range results {
		outcome := "success"
		if r.Err != nil {
			outcome = "failure"
			report.Failed = append(report.Failed, domain.AssetFailure{URL: assets[i].url, Error: r.Err.Error()})
			s.logger.WarnContext(ctx, "asset download failed",
				slog.String("url", assets[i].url),
				slog.Any("error", r.Err),
			)
		} else {
			report.Downloaded++
		}
		s.metrics.RecordPreloadAsset(ctx, assets[i].kind, outcome)
	}

	s.logger.InfoContext(ctx, "guide preload finished",
		slog.String("slug", slug),
		slog.Int("downloaded", report.Downloaded),
		slog.Int("failed", len(report.Failed)),
	)
	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("preload interrupted: %w", err)
	}
	return report, nil
}

func (s *PreloadService) download(ctx context.Context, a guideAsset) error {
	if err := os.MkdirAll(filepath.Dir(a.dest), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", a.dest, err)
	}

	part := a.dest + ".part"
	f, err := os.Create(part)
	if err != nil {
		return fmt.Errorf("creating %s: %w", part, err)
	}

	err = s.tours.Download(ctx, a.url, f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", part, cerr)
	}
	if err != nil {
		_ = os.Remove(part)
		return err
	}
	if err := os.Rename(part, a.dest); err != nil {
		return fmt.Errorf("renaming into %s: %w", a.dest, err)
	}
	return nil
}

// collectAssets lists the distinct asset URLs of a guide view in step order.
// Every asset gets its own destination: when two URLs map to the same path
// the later one is renamed by uniquePath.
func collectAssets(view *domain.GuideView, dir string) []guideAsset {
	var assets []guideAsset
	seen := make(map[string]struct{})
	claimed := make(map[string]struct{})
	add := func(kind, u string) {
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		rel := uniquePath(assetPath(u, view.AssetBaseURL), u, claimed)
		claimed[rel] = struct{}{}
		assets = append(assets, guideAsset{
			kind: kind,
			url:  u,
			dest: filepath.Join(dir, filepath.FromSlash(rel)),
		})
	}

	for _, step := range view.Steps {
		if step.Assets.AudioURL != nil {
			add(AssetAudio, *step.Assets.AudioURL)
		}
		if step.Assets.SubtitleURL != nil {
			add(AssetSubtitle, *step.Assets.SubtitleURL)
		}
		for _, img := range step.Assets.Images {
			add(AssetImage, img.URL)
		}
	}
	return assets
}

// assetPath maps an asset URL to a slash-separated path relative to the
// guide directory. Assets under the tour's base URL keep their layout;
// others land in external/ by file name. The result never escapes the
// guide directory.
func assetPath(assetURL, base string) string {
	rel, ok := strings.CutPrefix(assetURL, base)
	if !ok || base == "" {
		name := assetURL
		if u, err := url.Parse(assetURL); err == nil && u.Path != "" {
			name = u.Path
		}
		rel = "external/" + path.Base(name)
	}
	if i := strings.IndexAny(rel, "?#"); i >= 0 {
		rel = rel[:i]
	}
	return strings.TrimPrefix(path.Clean("/"+rel), "/")
}

// uniquePath returns rel, or when rel is already claimed, rel with a short
// name-based UUID of assetURL before the extension ("external/pic-1a2b3c4d.jpg").
// A numeric suffix settles the unlikely case where that is taken too.
func uniquePath(rel, assetURL string, claimed map[string]struct{}) string {
	if _, taken := claimed[rel]; !taken {
		return rel
	}
	ext := path.Ext(rel)
	stem := strings.TrimSuffix(rel, ext) + "-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(assetURL)).String()[:8]
	candidate := stem + ext
	for n := 2; ; n++ {
		if _, taken := claimed[candidate]; !taken {
			return candidate
		}
		candidate = stem + "-" + strconv.Itoa(n) + ext
	}
}

func writeGuideView(dir string, view *domain.GuideView) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	b, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("encoding guide view: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, GuideFile), pretty.Pretty(b), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", GuideFile, err)
	}
	return nil
}
