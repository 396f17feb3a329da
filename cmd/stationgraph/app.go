package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/c360studio/stationgraph/config"
	"github.com/c360studio/stationgraph/pipeline"
	"github.com/c360studio/stationgraph/source"
)

type stage int

const (
	stageFull stage = iota
	stageXML
	stageRDF
)

func (s stage) String() string {
	switch s {
	case stageXML:
		return "xml"
	case stageRDF:
		return "rdf"
	default:
		return "full"
	}
}

// App runs one pipeline stage with a resolved configuration.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
}

// NewApp creates an application fetching feeds over HTTP.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	fetcher := source.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, source.DefaultMaxContentSize, logger)
	return &App{
		cfg:      cfg,
		logger:   logger,
		pipeline: pipeline.New(cfg, fetcher, logger),
	}
}

// Run executes the stage and returns the generated files. Metrics are
// written even when the stage fails.
func (a *App) Run(ctx context.Context, s stage, inXML string) ([]string, error) {
	a.logger.Info("Stationgraph starting",
		"version", Version,
		"stage", s.String())

	var (
		files []string
		err   error
	)
	switch s {
	case stageXML:
		files, _, err = a.pipeline.GenerateXML(ctx)
	case stageRDF:
		files, err = a.pipeline.GenerateRDF(ctx, inXML)
	default:
		files, err = a.pipeline.Run(ctx)
	}

	if mErr := a.pipeline.WriteMetrics(); mErr != nil {
		if err != nil {
			a.logger.Warn("Failed to write metrics", "error", mErr)
		} else {
			err = mErr
		}
	}
	if err != nil {
		return nil, err
	}
	if a.cfg.Output.MetricsFile != "" {
		files = append(files, a.cfg.Output.MetricsFile)
	}
	return files, nil
}

func runStage(cmd *cobra.Command, opts *options, s stage) error {
	logger := newLogger(opts.logLevel)
	slog.SetDefault(logger)

	cfg, err := loadConfig(cmd, opts, logger)
	if err != nil {
		return err
	}
	if cfg.LogLevel != opts.logLevel {
		logger = newLogger(cfg.LogLevel)
		slog.SetDefault(logger)
	}

	files, err := NewApp(cfg, logger).Run(cmd.Context(), s, opts.inXML)
	if err != nil {
		return err
	}
	printFiles(cmd.OutOrStdout(), files)
	return nil
}

func printFiles(w io.Writer, files []string) {
	fmt.Fprintln(w, "Generated files:")
	for _, f := range files {
		fmt.Fprintf(w, "- %s\n", f)
	}
}
