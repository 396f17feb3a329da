package pipeline

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "stationgraph"

// Metrics holds the counters of one pipeline run. Each run owns its own
// registry, written once at the end for a textfile collector.
type Metrics struct {
	registry *prometheus.Registry

	FeedsFetched     *prometheus.CounterVec
	PrunedElements   *prometheus.CounterVec
	PrimaryStations  prometheus.Gauge
	MergedStations   prometheus.Gauge
	UnmatchedRecords prometheus.Gauge
	Triples          prometheus.Gauge
	UnmappedTerms    *prometheus.CounterVec
}

// NewMetrics creates and registers the run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FeedsFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "feeds_fetched_total",
			Help:      "Feeds downloaded and parsed.",
		}, []string{"feed"}),
		PrunedElements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "pruned_elements_total",
			Help:      "Elements removed from a feed before merging.",
		}, []string{"feed"}),
		PrimaryStations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "primary_stations",
			Help:      "Station names found in the step-free feed.",
		}),
		MergedStations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "merged_stations",
			Help:      "Stations that received a facilities record.",
		}),
		UnmatchedRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "unmatched_facility_records",
			Help:      "Facilities records that matched no station and were dropped.",
		}),
		Triples: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "triples",
			Help:      "Triples in the generated graph.",
		}),
		UnmappedTerms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "unmapped_terms_total",
			Help:      "Feed names with no predicate in the vocabulary.",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.FeedsFetched,
		m.PrunedElements,
		m.PrimaryStations,
		m.MergedStations,
		m.UnmatchedRecords,
		m.Triples,
		m.UnmappedTerms,
	)
	return m
}

// Registry exposes the run registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFile writes the metrics in Prometheus text format.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
