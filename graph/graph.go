package graph

import (
	"sort"
)

// Triple is a single (subject, predicate, object) statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Valid reports whether the triple can be stored: a resource subject, an
// IRI predicate and a non-empty object.
func (t Triple) Valid() bool {
	return t.Subject.IsResource() && !t.Subject.IsZero() &&
		t.Predicate.Kind == KindIRI && !t.Predicate.IsZero() &&
		!t.Object.IsZero()
}

// String renders the triple as one N-Triples line without the newline.
func (t Triple) String() string {
	return t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String() + " ."
}

// Graph is a set of triples.
//
// Graph is not safe for concurrent use. The pipeline has a single writer
// and no readers until serialization.
type Graph struct {
	triples map[Triple]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{triples: make(map[Triple]struct{})}
}

// Add inserts a triple and reports whether the graph grew. Invalid triples
// (empty components, literal subjects, non-IRI predicates) are ignored.
func (g *Graph) Add(subject, predicate, object Term) bool {
	t := Triple{Subject: subject, Predicate: predicate, Object: object}
	if !t.Valid() {
		return false
	}
	if _, ok := g.triples[t]; ok {
		return false
	}
	g.triples[t] = struct{}{}
	return true
}

// Has reports whether the triple is present.
func (g *Graph) Has(subject, predicate, object Term) bool {
	_, ok := g.triples[Triple{Subject: subject, Predicate: predicate, Object: object}]
	return ok
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns every triple in a stable order: by subject, then
// predicate, then object.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, len(g.triples))
	for t := range g.triples {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return Less(out[i], out[j])
	})
	return out
}

// Objects returns the sorted objects of every triple matching subject and
// predicate.
func (g *Graph) Objects(subject, predicate Term) []Term {
	var out []Term
	for t := range g.triples {
		if t.Subject == subject && t.Predicate == predicate {
			out = append(out, t.Object)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return compareTerms(out[i], out[j]) < 0
	})
	return out
}

// Count returns the number of triples with the given subject and predicate.
// A zero subject or predicate acts as a wildcard.
func (g *Graph) Count(subject, predicate Term) int {
	n := 0
	for t := range g.triples {
		if !subject.IsZero() && t.Subject != subject {
			continue
		}
		if !predicate.IsZero() && t.Predicate != predicate {
			continue
		}
		n++
	}
	return n
}

// Subjects returns the distinct subjects in sorted order.
func (g *Graph) Subjects() []Term {
	seen := make(map[Term]struct{})
	for t := range g.triples {
		seen[t.Subject] = struct{}{}
	}
	out := make([]Term, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return compareTerms(out[i], out[j]) < 0
	})
	return out
}

// Less orders triples by subject, predicate and object.
func Less(a, b Triple) bool {
	if c := compareTerms(a.Subject, b.Subject); c != 0 {
		return c < 0
	}
	if c := compareTerms(a.Predicate, b.Predicate); c != 0 {
		return c < 0
	}
	return compareTerms(a.Object, b.Object) < 0
}

// compareTerms orders IRIs before blank nodes before literals, then by value.
func compareTerms(a, b Term) int {
	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}
		return 1
	}
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	default:
		return 0
	}
}
