// Package main provides the stationgraph binary entry point.
// Stationgraph downloads the TfL station facilities and step-free tube
// guide feeds, merges them by station name and publishes the result as
// XML and RDF.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/stationgraph/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "stationgraph"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the command line flags shared by all stages.
type options struct {
	configPath          string
	logLevel            string
	outXML              string
	outRDF              string
	noStorePartialFiles bool
	rdfFormat           string
	metricsFile         string
	inXML               string
}

func rootCmd() *cobra.Command {
	opts := &options{}
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Build a linked-data graph of London Underground stations",
		Long: `Stationgraph builds a linked-data description of London Underground
stations from two TfL open data feeds.

It:
- downloads the station facilities and step-free tube guide feeds
- prunes opening hours and "None" accessibility entries
- merges facilities into the step-free stations by normalized name
- writes the merged XML and an RDF graph (RDF/XML, N-Triples or Turtle)

Running without a subcommand executes the full pipeline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd, opts, stageFull)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML, default: stationgraph.yaml in current or parent directories)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.outXML, "out-xml", defaults.Output.XML, "Merged XML output file")
	flags.StringVar(&opts.outRDF, "out-rdf", defaults.Output.RDF, "RDF output file")
	flags.BoolVar(&opts.noStorePartialFiles, "no-store-partial-files", false, "Do not write the pruned intermediate feeds")
	flags.StringVar(&opts.rdfFormat, "rdf-format", defaults.Output.RDFFormat, "RDF serialization (rdfxml, ntriples, turtle)")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")

	cmd.AddCommand(&cobra.Command{
		Use:   "xml",
		Short: "Fetch, prune and merge the feeds into the merged XML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd, opts, stageXML)
		},
	})

	rdfCmd := &cobra.Command{
		Use:   "rdf",
		Short: "Map a merged XML file (or freshly merged feeds) to RDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd, opts, stageRDF)
		},
	}
	rdfCmd.Flags().StringVar(&opts.inXML, "in-xml", "", "Merged XML input file (fetches and merges the feeds when empty)")
	cmd.AddCommand(rdfCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// newLogger builds the stderr text logger for a level name.
func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig layers the command line flags the user set over the loaded
// configuration.
func loadConfig(cmd *cobra.Command, opts *options, logger *slog.Logger) (*config.Config, error) {
	cfg, err := config.NewLoader(logger).Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	overrides := &config.Config{}
	if flags.Changed("log-level") {
		overrides.LogLevel = opts.logLevel
	}
	if flags.Changed("out-xml") {
		overrides.Output.XML = opts.outXML
	}
	if flags.Changed("out-rdf") {
		overrides.Output.RDF = opts.outRDF
	}
	if flags.Changed("rdf-format") {
		overrides.Output.RDFFormat = opts.rdfFormat
	}
	if flags.Changed("metrics-file") {
		overrides.Output.MetricsFile = opts.metricsFile
	}
	cfg.Merge(overrides)

	if opts.noStorePartialFiles {
		cfg.Output.StorePartialFiles = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
