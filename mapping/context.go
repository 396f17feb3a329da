package mapping

import (
	"github.com/beevik/etree"

	"github.com/c360studio/stationgraph/graph"
)

// Context carries the graph being built and the station currently being
// mapped. Every station processor receives it explicitly.
type Context struct {
	// Graph accumulates all emitted triples.
	Graph *graph.Graph

	// Station is the subject of the station being mapped.
	Station graph.Term

	// Key is the blank node identifier prefix of the current station.
	Key string

	mapper *Mapper
}

// Add inserts one triple and reports whether the graph grew.
func (c *Context) Add(subject, predicate, object graph.Term) bool {
	return c.Graph.Add(subject, predicate, object)
}

// Emit selects the elements under el matching path and adds one triple per
// match, resolving subject, predicate and object against the matched
// element. A match whose object (or any other component) resolves empty
// adds nothing. Emit returns the number of triples added.
func (c *Context) Emit(el *etree.Element, path string, subject, predicate, object Value) int {
	if el == nil {
		return 0
	}
	added := 0
	for _, match := range el.FindElements(path) {
		o := object.Resolve(match)
		if o.IsZero() {
			continue
		}
		if c.Graph.Add(subject.Resolve(match), predicate.Resolve(match), o) {
			added++
		}
	}
	return added
}

// StationValue is a constant Value for the current station subject.
func (c *Context) StationValue() Value {
	return Const(c.Station)
}
