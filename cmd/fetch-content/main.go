// Package main is the batch CMS ingestion command. It mirrors every CMS
// resource in every configured language into the mock store, then writes the
// manifest and the discovered client config. It exits with status 1 when any
// (resource, language) pair failed and 2 on usage errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/mockstore"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/app"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/bootstrap"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/health"
)

const otelShutdownTimeout = 5 * time.Second

// errItemsFailed marks a run that completed with failed items.
var errItemsFailed = errors.New("one or more resources failed")

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options are the command-line overrides on top of the profile config.
type options struct {
	Profile   string
	ConfigDir string
	ClientID  string
	Languages []string
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	opts := options{
		Profile:   os.Getenv(bootstrap.ProfileEnv),
		ConfigDir: "configs",
	}
	var languages string

	fs.SetOutput(os.Stderr)
	fs.StringVar(&opts.Profile, "profile", opts.Profile, "Config profile (defaults to $"+bootstrap.ProfileEnv+")")
	fs.StringVar(&opts.ConfigDir, "config-dir", opts.ConfigDir, "Directory holding base.yaml and the profile YAML")
	fs.StringVar(&opts.ClientID, "client", "", "Override cms.client_id")
	fs.StringVar(&languages, "languages", "", "Comma separated display codes overriding fetch.languages")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if languages != "" {
		for _, l := range strings.Split(languages, ",") {
			l = strings.TrimSpace(l)
			if !domain.IsSupportedLanguage(l) {
				return options{}, fmt.Errorf("unsupported language %q (want one of %s)",
					l, strings.Join(domain.SupportedLanguages, ", "))
			}
			opts.Languages = append(opts.Languages, l)
		}
	}
	return opts, nil
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	rt, err := bootstrap.Start(ctx, opts.Profile, stderr, config.WithConfigDir(opts.ConfigDir))
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := rt.Shutdown(shutdownCtx); err != nil {
			rt.Logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	cfg := rt.Config
	if opts.ClientID != "" {
		cfg.CMS.ClientID = opts.ClientID
	}
	languages := cfg.Fetch.Languages
	if len(opts.Languages) > 0 {
		languages = opts.Languages
	}

	bootstrap.ProvideIngestion(rt.Injector)

	ingest, err := do.Invoke[*app.IngestService](rt.Injector)
	if err != nil {
		return fmt.Errorf("resolving ingestion service: %w", err)
	}
	writer := do.MustInvoke[*mockstore.Writer](rt.Injector)

	endpoints := app.Resources(filepath.Join(cfg.CMS.MockDir, cfg.CMS.ClientID))
	report, runErr := ingest.Run(ctx, endpoints, languages)
	if report != nil {
		printReport(stdout, report)
	}
	if runErr != nil {
		return runErr
	}

	if err := writer.WriteDiscoveredConfig(mockstore.DiscoveredConfig{
		ClientID:     cfg.CMS.ClientID,
		RunID:        report.RunID,
		DiscoveredAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("writing discovered config: %w", err)
	}

	registry := health.New()
	bootstrap.RegisterCheckers(rt.Injector, registry)
	if ok, failed := registry.Healthy(ctx); !ok {
		for name, err := range failed {
			rt.Logger.WarnContext(ctx, "downstream unhealthy after ingestion",
				slog.String("component", name),
				slog.Any("error", err),
			)
		}
	}

	if report.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", errItemsFailed, report.Failed, report.Total)
	}
	return nil
}

// printReport writes one line per failed or skipped item followed by the
// totals.
func printReport(w io.Writer, report *domain.BatchReport) {
	for _, item := range report.Items {
		if item.Status == domain.FetchSucceeded {
			continue
		}
		fmt.Fprintf(w, "%s suite=%s language=%s %s\n", item.Status, item.SuiteID, item.Language, item.Message)
	}
	fmt.Fprintf(w, "run_id=%s total=%d succeeded=%d skipped=%d failed=%d\n",
		report.RunID, report.Total, report.Succeeded, report.Skipped, report.Failed)
}
