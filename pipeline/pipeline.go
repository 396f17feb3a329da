// Package pipeline wires the station graph stages together: acquire and
// merge the feeds, write the XML outputs, then map and write the RDF graph.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/c360studio/stationgraph/config"
	"github.com/c360studio/stationgraph/export"
	"github.com/c360studio/stationgraph/mapping"
	"github.com/c360studio/stationgraph/merge"
	"github.com/c360studio/stationgraph/source"
)

// Feed names used in logs and metric labels.
const (
	FeedFacilities = "facilities"
	FeedStepFree   = "step_free"
)

// xmlIndent is the indentation of written XML files.
const xmlIndent = 2

// Fetcher downloads a feed body.
type Fetcher interface {
	Fetch(ctx context.Context, url string, query map[string]string) ([]byte, error)
}

// Documents are the trees acquired during one run.
type Documents struct {
	// Facilities and StepFree are the pruned source feeds.
	Facilities *etree.Document
	StepFree   *etree.Document

	// Merged is the step-free tree enriched with facilities records.
	Merged *etree.Document
	Stats  merge.Stats
}

// Pipeline runs the station graph stages with one configuration.
type Pipeline struct {
	cfg     *config.Config
	fetcher Fetcher
	logger  *slog.Logger
	metrics *Metrics
}

// New creates a pipeline. A nil logger falls back to slog.Default().
func New(cfg *config.Config, fetcher Fetcher, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:     cfg,
		fetcher: fetcher,
		logger:  logger,
		metrics: NewMetrics(),
	}
}

// Metrics returns the metrics of this pipeline's run.
func (p *Pipeline) Metrics() *Metrics {
	return p.metrics
}

// Acquire fetches, parses and prunes both feeds and merges them by
// station name.
func (p *Pipeline) Acquire(ctx context.Context) (*Documents, error) {
	feeds := p.cfg.Feeds

	facilities, err := p.load(ctx, FeedFacilities, feeds.Facilities)
	if err != nil {
		return nil, err
	}
	stepFree, err := p.load(ctx, FeedStepFree, feeds.StepFree)
	if err != nil {
		return nil, err
	}

	merged, stats := merge.Merge(stepFree, feeds.StepFree.NamePath, facilities, feeds.Facilities.NamePath)
	p.metrics.PrimaryStations.Set(float64(stats.Primary))
	p.metrics.MergedStations.Set(float64(stats.Matched))
	p.metrics.UnmatchedRecords.Set(float64(stats.Unmatched))

	p.logger.Info("Merged feeds",
		slog.Int("stations", stats.Primary),
		slog.Int("matched", stats.Matched))
	if stats.Unmatched > 0 {
		p.logger.Debug("Dropped facilities records with no matching station",
			slog.Int("records", stats.Unmatched))
	}

	return &Documents{
		Facilities: facilities,
		StepFree:   stepFree,
		Merged:     merged,
		Stats:      stats,
	}, nil
}

// load fetches one feed and applies its prune rules.
func (p *Pipeline) load(ctx context.Context, name string, feed config.FeedConfig) (*etree.Document, error) {
	query := p.cfg.Query(feed)
	if feed.Authenticated && query == nil {
		p.logger.Warn("No credentials configured for authenticated feed", slog.String("feed", name))
	}

	data, err := p.fetcher.Fetch(ctx, feed.URL, query)
	if err != nil {
		return nil, fmt.Errorf("fetch %s feed: %w", name, err)
	}
	doc, err := source.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s feed: %w", name, err)
	}
	p.metrics.FeedsFetched.WithLabelValues(name).Inc()

	removed, err := source.Prune(doc, feed.PruneRules())
	if err != nil {
		return nil, fmt.Errorf("prune %s feed: %w", name, err)
	}
	p.metrics.PrunedElements.WithLabelValues(name).Add(float64(removed))

	p.logger.Debug("Loaded feed",
		slog.String("feed", name),
		slog.Int("bytes", len(data)),
		slog.Int("pruned", removed))
	return doc, nil
}

// GenerateXML acquires the feeds and writes the merged document, plus the
// pruned feeds when partial files are enabled. It returns the written
// files and the merged document.
func (p *Pipeline) GenerateXML(ctx context.Context) ([]string, *etree.Document, error) {
	docs, err := p.Acquire(ctx)
	if err != nil {
		return nil, nil, err
	}

	out := p.cfg.Output
	if err := source.WriteFile(docs.Merged, out.XML, xmlIndent); err != nil {
		return nil, nil, err
	}
	files := []string{out.XML}

	if out.StorePartialFiles {
		partials := []struct {
			doc  *etree.Document
			path string
		}{
			{docs.Facilities, p.cfg.Feeds.Facilities.PartialFile},
			{docs.StepFree, p.cfg.Feeds.StepFree.PartialFile},
		}
		for _, partial := range partials {
			if partial.path == "" {
				continue
			}
			path := p.partialPath(partial.path)
			if err := source.WriteFile(partial.doc, path, xmlIndent); err != nil {
				return nil, nil, err
			}
			files = append(files, path)
		}
	}

	return files, docs.Merged, nil
}

// partialPath places relative partial files next to the merged XML.
func (p *Pipeline) partialPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(filepath.Dir(p.cfg.Output.XML), name)
}

// GenerateRDF maps a merged document and writes the graph. The document is
// read from inXML, or acquired from the feeds when inXML is empty.
func (p *Pipeline) GenerateRDF(ctx context.Context, inXML string) ([]string, error) {
	var doc *etree.Document
	if inXML != "" {
		loaded, err := source.LoadFile(inXML)
		if err != nil {
			return nil, err
		}
		doc = loaded
	} else {
		docs, err := p.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		doc = docs.Merged
	}
	return p.writeRDF(ctx, doc)
}

// Run executes both stages, mapping the merged document in memory.
func (p *Pipeline) Run(ctx context.Context) ([]string, error) {
	files, merged, err := p.GenerateXML(ctx)
	if err != nil {
		return nil, err
	}
	rdfFiles, err := p.writeRDF(ctx, merged)
	if err != nil {
		return nil, err
	}
	return append(files, rdfFiles...), nil
}

func (p *Pipeline) writeRDF(ctx context.Context, doc *etree.Document) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format, err := export.ParseFormat(p.cfg.Output.RDFFormat)
	if err != nil {
		return nil, err
	}

	mapper := mapping.New(
		mapping.WithLogger(p.logger),
		mapping.WithDeriveUnmapped(p.cfg.Vocabulary.DeriveUnmapped),
		mapping.WithUnmappedHook(func(kind, _ string) {
			p.metrics.UnmappedTerms.WithLabelValues(kind).Inc()
		}),
	)
	g, err := mapper.Map(doc)
	if err != nil {
		return nil, fmt.Errorf("map stations: %w", err)
	}
	p.metrics.Triples.Set(float64(g.Len()))
	p.logger.Info("Mapped stations", slog.Int("triples", g.Len()))

	if err := export.WriteFile(p.cfg.Output.RDF, g, format); err != nil {
		return nil, err
	}
	return []string{p.cfg.Output.RDF}, nil
}

// WriteMetrics writes the run metrics when a metrics file is configured.
func (p *Pipeline) WriteMetrics() error {
	if p.cfg.Output.MetricsFile == "" {
		return nil
	}
	return p.metrics.WriteFile(p.cfg.Output.MetricsFile)
}
