// Package mapping turns the merged station document into RDF triples.
//
// Each station element is mapped by a fixed sequence of processors. A
// processor selects parts of the station element and emits triples through
// Context.Emit, which resolves the subject, predicate and object Values
// against every matched element.
package mapping

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/beevik/etree"

	"github.com/c360studio/stationgraph/graph"
	"github.com/c360studio/stationgraph/merge"
	"github.com/c360studio/stationgraph/vocabulary/tfl"
)

// StationPath selects the station elements of the merged document.
const StationPath = "//Station"

// ErrMissingField is returned when a field the mapping requires is absent.
var ErrMissingField = errors.New("missing required field")

// UnmappedFunc is called every time a dynamic name has no predicate in the
// mapping table. kind is one of "facility", "accessibility" or
// "interchange".
type UnmappedFunc func(kind, name string)

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger used for unmapped names.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mapper) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDeriveUnmapped makes the mapper invent a tfl:has<Name> predicate for
// names missing from the mapping table instead of skipping them.
func WithDeriveUnmapped(derive bool) Option {
	return func(m *Mapper) {
		m.deriveUnmapped = derive
	}
}

// WithUnmappedHook registers a callback for unmapped names.
func WithUnmappedHook(fn UnmappedFunc) Option {
	return func(m *Mapper) {
		m.onUnmapped = fn
	}
}

// Mapper maps merged station documents to graphs.
type Mapper struct {
	logger         *slog.Logger
	deriveUnmapped bool
	onUnmapped     UnmappedFunc

	// warned holds kind/name pairs already logged during the current run.
	warned map[string]bool
}

// New creates a Mapper.
func New(opts ...Option) *Mapper {
	m := &Mapper{logger: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewContext creates a mapping context writing into g.
func (m *Mapper) NewContext(g *graph.Graph) *Context {
	return &Context{Graph: g, mapper: m}
}

// Map maps every station of doc into a new graph. The first station that
// lacks a required field aborts the run.
func (m *Mapper) Map(doc *etree.Document) (*graph.Graph, error) {
	if doc == nil || doc.Root() == nil {
		return nil, fmt.Errorf("map: empty document")
	}
	m.warned = make(map[string]bool)

	ctx := m.NewContext(graph.New())
	for _, st := range doc.FindElements(StationPath) {
		if err := m.MapStation(ctx, st); err != nil {
			return nil, err
		}
	}
	return ctx.Graph, nil
}

// MapStation emits the triples of a single station element into ctx.
func (m *Mapper) MapStation(ctx *Context, st *etree.Element) error {
	name := merge.DisplayName(text(st.SelectElement("StationName")))
	if name == "" {
		return fmt.Errorf("station: %w: StationName", ErrMissingField)
	}

	ctx.Key = StationKey(name)
	ctx.Station = graph.IRI(tfl.Namespace + ctx.Key)
	ctx.Add(ctx.Station, predicateIRI(tfl.StationName), graph.Literal(name))

	for _, p := range stationProcessors {
		if err := p.fn(ctx, st); err != nil {
			return fmt.Errorf("station %q: %s: %w", name, p.name, err)
		}
	}
	return nil
}

// StationKey converts a display name into the local part of the station IRI.
func StationKey(name string) string {
	return url.PathEscape(strings.ReplaceAll(name, " ", "_"))
}

// flagPredicate resolves a dynamic name through lookup. Unknown names are
// reported and either skipped (zero term) or given a derived predicate.
func (m *Mapper) flagPredicate(kind, name string, lookup func(string) (string, bool)) graph.Term {
	if key, ok := lookup(name); ok {
		return predicateIRI(key)
	}

	if m.onUnmapped != nil {
		m.onUnmapped(kind, name)
	}
	if m.warned == nil {
		m.warned = make(map[string]bool)
	}
	if id := kind + "/" + name; !m.warned[id] {
		m.warned[id] = true
		m.logger.Warn("No predicate mapped for name",
			"kind", kind,
			"name", name,
			"derived", m.deriveUnmapped)
	}

	if m.deriveUnmapped {
		return graph.IRI(tfl.DerivedPredicateIRI(name))
	}
	return graph.Term{}
}
