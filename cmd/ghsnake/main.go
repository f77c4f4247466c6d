// Command ghsnake turns a GitHub contribution calendar into a snake route:
// it loads a calendar, solves a closed path that eats every non-empty
// cell, and renders the result as SVG and PNG, optionally publishing and
// announcing it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ghsnake/routesolver/internal/calendar"
	"github.com/ghsnake/routesolver/internal/cloudlog"
	"github.com/ghsnake/routesolver/internal/config"
	"github.com/ghsnake/routesolver/internal/diagnostics"
	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/notify"
	"github.com/ghsnake/routesolver/internal/publish"
	"github.com/ghsnake/routesolver/internal/render"
	"github.com/ghsnake/routesolver/internal/secretsrc"
	"github.com/ghsnake/routesolver/internal/snake"
	"github.com/ghsnake/routesolver/internal/solver"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	inputOverride := flag.String("input", "", "override the configured calendar JSON path")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *inputOverride != "" {
		cfg.InputPath = *inputOverride
	}

	if cfg.LogFormat == "gcp" {
		slog.SetDefault(slog.New(cloudlog.New(os.Stdout, slog.LevelInfo)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	}

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("ghsnake: run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	started := time.Now()

	doc, err := calendar.FileFetcher{Path: cfg.InputPath}.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch calendar: %w", err)
	}

	original, err := grid.New(doc.ToColors())
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	if report, err := diagnostics.Analyze(original); err != nil {
		slog.Warn("diagnostics failed", "error", err)
	} else {
		slog.Info("grid topology", "clusters", len(report.Clusters), "isolated_colors", report.IsolatedColors())
	}

	work := original.Clone()
	start, err := buildSeed(cfg)
	if err != nil {
		return fmt.Errorf("build start pose: %w", err)
	}

	route, err := solver.Solve(ctx, work, start)
	if err != nil {
		var solveErr *solver.Error
		if errors.As(err, &solveErr) && solveErr.Partial != nil {
			slog.Error("solve failed, rendering partial route", "poses", len(solveErr.Partial.Poses), "error", err)
			route = solveErr.Partial
		} else {
			return fmt.Errorf("solve: %w", err)
		}
	}

	slog.Info("route solved", "poses", len(route.Poses), "elapsed", time.Since(started))

	svgPath := filepath.Join(cfg.OutputDir, "route.svg")
	pngPath := filepath.Join(cfg.OutputDir, "route.png")
	if err := writeOutputs(original, route, svgPath, pngPath); err != nil {
		return err
	}

	return publishAndNotify(ctx, cfg, route, svgPath, time.Since(started))
}

// buildSeed constructs the starting pose per cfg.InitialPose: "horizontal"
// (the default, resting just above the grid) or "single_point" (degenerate,
// collapsed onto the grid's origin).
func buildSeed(cfg config.Config) (snake.Snake, error) {
	switch cfg.InitialPose {
	case "single_point":
		return snake.FromSinglePoint(geom.Point{X: 0, Y: 0}, cfg.SnakeLength)
	default:
		return snake.Horizontal(cfg.SnakeLength)
	}
}

func writeOutputs(original *grid.Grid, route *solver.Route, svgPath, pngPath string) error {
	svgFile, err := os.Create(svgPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", svgPath, err)
	}
	defer svgFile.Close()
	render.SVG(svgFile, original, route)

	pngFile, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", pngPath, err)
	}
	defer pngFile.Close()
	return render.PNG(pngFile, original, route)
}

// publishAndNotify runs the bucket upload and the Discord announcement
// concurrently once the (strictly single-threaded) solve has finished —
// the only concurrency in this program lives here, in the ambient output
// layer.
func publishAndNotify(ctx context.Context, cfg config.Config, route *solver.Route, svgPath string, elapsed time.Duration) error {
	if cfg.BucketName == "" && cfg.WebhookURL == "" && cfg.SecretName == "" {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)

	webhookURL := cfg.WebhookURL
	if cfg.SecretName != "" {
		resolved, err := secretsrc.Get(ctx, cfg.SecretName, "")
		if err != nil {
			slog.Warn("could not resolve webhook secret, falling back to webhook_url", "error", err)
		} else {
			webhookURL = resolved
		}
	}

	if cfg.BucketName != "" {
		g.Go(func() error {
			f, err := os.Open(svgPath)
			if err != nil {
				return fmt.Errorf("open %s for publish: %w", svgPath, err)
			}
			defer f.Close()
			return publish.Upload(ctx, cfg.BucketName, filepath.Base(svgPath), f, "")
		})
	}

	if webhookURL != "" {
		g.Go(func() error {
			return notify.RouteSolved(webhookURL, len(route.Poses), elapsed.Seconds())
		})
	}

	return g.Wait()
}
