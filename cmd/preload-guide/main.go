// Package main is the offline bundle command. It loads one guide from the
// mock store and the legacy asset store, writes its view as guide.json and
// downloads every audio, subtitle and image asset it references. Progress is
// printed as the downloads complete. It exits with status 1 when any asset
// failed and 2 on usage errors.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/tidwall/pretty"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/app"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/bootstrap"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/config"
)

const otelShutdownTimeout = 5 * time.Second

// errAssetsFailed marks a bundle with missing assets.
var errAssetsFailed = errors.New("one or more assets failed")

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

type options struct {
	Profile     string
	ConfigDir   string
	Slug        string
	Language    string
	OutputDir   string
	Concurrency int
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	opts := options{
		Profile:   os.Getenv(bootstrap.ProfileEnv),
		ConfigDir: "configs",
		Language:  domain.DefaultLanguage,
	}

	fs.SetOutput(os.Stderr)
	fs.StringVar(&opts.Profile, "profile", opts.Profile, "Config profile (defaults to $"+bootstrap.ProfileEnv+")")
	fs.StringVar(&opts.ConfigDir, "config-dir", opts.ConfigDir, "Directory holding base.yaml and the profile YAML")
	fs.StringVar(&opts.Slug, "slug", "", "Slug of the POI whose guide is bundled (required)")
	fs.StringVar(&opts.Language, "lang", opts.Language, "Display language of the bundle")
	fs.StringVar(&opts.OutputDir, "out", "", "Override preload.output_dir")
	fs.IntVar(&opts.Concurrency, "concurrency", 0, "Override preload.concurrency")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if strings.TrimSpace(opts.Slug) == "" {
		return options{}, errors.New("missing -slug")
	}
	if opts.Concurrency < 0 {
		return options{}, fmt.Errorf("-concurrency must not be negative, got %d", opts.Concurrency)
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

	if opts.OutputDir != "" {
		rt.Config.Preload.OutputDir = opts.OutputDir
	}
	if opts.Concurrency > 0 {
		rt.Config.Preload.Concurrency = opts.Concurrency
	}

	bootstrap.ProvideGuides(rt.Injector)
	bootstrap.ProvidePreload(rt.Injector)

	svc, err := do.Invoke[*app.PreloadService](rt.Injector)
	if err != nil {
		return fmt.Errorf("resolving preload service: %w", err)
	}

	report, err := svc.Preload(ctx, opts.Language, opts.Slug, func(percent float64) {
		fmt.Fprintf(stderr, "progress %5.1f%%\n", percent)
	})
	if report != nil {
		if perr := printReport(stdout, report); perr != nil {
			return perr
		}
	}
	if err != nil {
		return err
	}
	if len(report.Failed) > 0 {
		return fmt.Errorf("%w: %d of %d", errAssetsFailed, len(report.Failed), report.Total)
	}
	return nil
}

func printReport(w io.Writer, report *domain.PreloadReport) error {
	b, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = w.Write(pretty.Pretty(b))
	return err
}
