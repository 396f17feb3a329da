// Package tfl provides vocabulary predicates for London transit station
// entities built from the TfL station facilities and step-free tube guide
// feeds.
//
// Predicates are dotted keys (for example "tfl.station.name") registered
// with the semstreams vocabulary registry, each mapped to the IRI written
// into the RDF output. Source element and attribute names that carry
// meaning only through their spelling (facility names, accessibility flags,
// interchange flags) are resolved through explicit lookup tables rather
// than by building predicate names from strings.
//
// Import this package to auto-register predicates:
//
//	import _ "github.com/c360studio/stationgraph/vocabulary/tfl"
package tfl
