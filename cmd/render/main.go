// Command render fetches the rider dataset and writes the chart to disk.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/okian/veloplot/internal/adapters/dataset"
	"github.com/okian/veloplot/internal/adapters/render"
	"github.com/okian/veloplot/internal/domain/chart"
	"github.com/okian/veloplot/pkg/logger"
)

const defaultFormats = "svg,png,html,json,yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		stop()
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:   "render",
		Usage:  "Render the Alpe d'Huez doping scatter plot to files",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "Dataset URL",
				Value:   dataset.DefaultURL,
				Sources: cli.EnvVars("VELOPLOT_DATASET_URL"),
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Read the dataset from a local JSON file instead of --url",
				Sources: cli.EnvVars("VELOPLOT_DATASET_PATH"),
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output directory",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "formats",
				Usage: "Comma-separated output formats: " + defaultFormats,
				Value: defaultFormats,
			},
			&cli.StringFlag{
				Name:  "subtitle",
				Usage: "Chart subtitle; defaults to the record count",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Dataset fetch timeout",
				Value: 30 * time.Second,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Value:   "info",
				Sources: cli.EnvVars("VELOPLOT_LOG_LEVEL"),
			},
		},
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if err := logger.InitWithWriter(os.Stderr); err != nil {
		return err
	}
	if err := logger.SetLevelString(cmd.String("log-level")); err != nil {
		return err
	}
	log := logger.Get().Named("render")

	formats, err := parseFormats(cmd.String("formats"))
	if err != nil {
		return err
	}

	var src dataset.Source
	if path := cmd.String("file"); path != "" {
		src = dataset.NewFileSource(path, log)
	} else {
		src = dataset.NewHTTPSource(cmd.String("url"),
			dataset.WithTimeout(cmd.Duration("timeout")),
			dataset.WithHTTPLogger(log),
		)
	}

	c, err := build(ctx, src, chart.WithSubtitle(cmd.String("subtitle")))
	if err != nil {
		return err
	}
	for _, r := range c.Dataset.Rejected {
		log.Warn(ctx, "record rejected", logger.Int("index", r.Index), logger.String("reason", r.Reason))
	}

	written, err := writeAll(ctx, c, cmd.String("out"), formats)
	if err != nil {
		return err
	}
	log.Info(ctx, "chart written",
		logger.Int("marks", len(c.Marks)),
		logger.Int("rejected", len(c.Dataset.Rejected)),
		logger.Any("files", written),
	)
	return nil
}

func build(ctx context.Context, src dataset.Source, opts ...chart.Option) (*chart.Chart, error) {
	raw, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return chart.Render(chart.Transform(raw), opts...)
}

func parseFormats(s string) ([]render.Format, error) {
	var out []render.Format
	seen := make(map[render.Format]bool)
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := render.ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no formats given", render.ErrUnknownFormat)
	}
	return out, nil
}

// outputName maps a format to its file name. Data exports are named after
// the dataset, the page after the site root.
func outputName(f render.Format) string {
	switch f {
	case render.FormatHTML:
		return "index.html"
	case render.FormatJSON, render.FormatYAML:
		return "dataset" + f.Extension()
	}
	return "chart" + f.Extension()
}

// writeAll encodes c in every format concurrently. Each file is written to
// a temporary name and renamed into place.
func writeAll(ctx context.Context, c *chart.Chart, dir string, formats []render.Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	paths := make([]string, len(formats))
	g, gCtx := errgroup.WithContext(ctx)
	for i, f := range formats {
		i, f := i, f
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, outputName(f))
			if err := writeFile(path, c, f); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeFile(path string, c *chart.Chart, f render.Format) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := render.Encode(tmp, c, f); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
