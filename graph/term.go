// Package graph provides the in-memory RDF graph that station triples are
// emitted into.
//
// A graph is a set of triples: adding the same triple twice is a no-op and
// nothing is ever removed. Terms are a small tagged variant (IRI, blank node
// or literal) so callers never need to type-switch on interface values.
package graph

import (
	"strings"
	"unicode"
)

// TermKind identifies which variant a Term holds.
type TermKind int

const (
	// KindNone is the zero Term. It is never stored in a graph.
	KindNone TermKind = iota

	// KindIRI is a named resource.
	KindIRI

	// KindBlank is a blank node with a deterministic local identifier.
	KindBlank

	// KindLiteral is a plain string literal.
	KindLiteral
)

// String returns a short name for the kind.
func (k TermKind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return "none"
	}
}

// Term is an RDF term: an IRI, a blank node or a literal.
type Term struct {
	Kind  TermKind
	Value string
}

// IRI returns a named resource term.
func IRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// Blank returns a blank node term with the given identifier.
func Blank(id string) Term {
	return Term{Kind: KindBlank, Value: id}
}

// Literal returns a plain literal term.
func Literal(value string) Term {
	return Term{Kind: KindLiteral, Value: value}
}

// IsZero reports whether the term is empty. An IRI or blank node with no
// identifier and a literal with no text are all empty.
func (t Term) IsZero() bool {
	return t.Kind == KindNone || t.Value == ""
}

// IsResource reports whether the term can be used as a subject.
func (t Term) IsResource() bool {
	return t.Kind == KindIRI || t.Kind == KindBlank
}

// String renders the term in N-Triples notation.
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	case KindLiteral:
		return `"` + EscapeLiteral(t.Value) + `"`
	default:
		return ""
	}
}

// EscapeLiteral escapes special characters for quoted RDF string literals.
func EscapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

// BlankID joins parts into a blank node identifier that is a valid XML
// NCName, so the same identifier works as an rdf:nodeID and as an
// N-Triples label. Characters outside [A-Za-z0-9_.-] become underscores and
// an identifier that would start with a digit, dot or hyphen gets a "b"
// prefix.
func BlankID(parts ...string) string {
	var sb strings.Builder
	for _, part := range parts {
		for _, r := range part {
			switch {
			case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
				sb.WriteRune(r)
			case r == '_' || r == '-' || r == '.':
				sb.WriteRune(r)
			default:
				sb.WriteByte('_')
			}
		}
	}

	id := sb.String()
	if id == "" {
		return ""
	}
	if first := id[0]; first == '-' || first == '.' || (first >= '0' && first <= '9') {
		id = "b" + id
	}
	return id
}
