package mapping

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/c360studio/stationgraph/graph"
	"github.com/c360studio/stationgraph/vocabulary/tfl"
)

// Value is one component of an emitted triple: either a constant term or a
// rule deriving a term from the matched element. A rule returning the zero
// term suppresses the triple.
type Value struct {
	term graph.Term
	rule func(el *etree.Element) graph.Term
}

// Const returns a Value that always resolves to t.
func Const(t graph.Term) Value {
	return Value{term: t}
}

// Derive returns a Value computed from the matched element.
func Derive(rule func(el *etree.Element) graph.Term) Value {
	return Value{rule: rule}
}

// Predicate returns a constant Value for a registered predicate key.
func Predicate(key string) Value {
	return Const(predicateIRI(key))
}

// Resolve computes the term for the matched element.
func (v Value) Resolve(el *etree.Element) graph.Term {
	if v.rule != nil {
		return v.rule(el)
	}
	return v.term
}

// TextLiteral resolves to the element's trimmed text as a literal. Empty
// text resolves to the zero term, so no triple is emitted.
var TextLiteral = Derive(func(el *etree.Element) graph.Term {
	if t := text(el); t != "" {
		return graph.Literal(t)
	}
	return graph.Term{}
})

func predicateIRI(key string) graph.Term {
	return graph.IRI(tfl.PredicateIRI(key))
}

// text returns the trimmed character data of el, or "" for a nil element.
func text(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}
