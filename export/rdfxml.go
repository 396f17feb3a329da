package export

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/c360studio/stationgraph/graph"
	"github.com/c360studio/stationgraph/vocabulary/tfl"
)

var ncName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9._-]*$`)

// writeRDFXML writes one rdf:Description per subject. IRI subjects use
// rdf:about and blank nodes rdf:nodeID; objects become rdf:resource,
// rdf:nodeID or element text.
func writeRDFXML(w io.Writer, g *graph.Graph) error {
	triples := g.Triples()
	namespaces, err := xmlNamespaces(triples)
	if err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("rdf:RDF")
	for _, prefix := range sortedKeys(namespaces) {
		root.CreateAttr("xmlns:"+prefix, namespaces[prefix])
	}
	qnames := make(map[string]string, len(namespaces))
	for prefix, ns := range namespaces {
		qnames[ns] = prefix
	}

	var desc *etree.Element
	for i, t := range triples {
		if i == 0 || triples[i-1].Subject != t.Subject {
			desc = root.CreateElement("rdf:Description")
			setNode(desc, t.Subject, "rdf:about")
		}

		ns, local := splitPredicate(t.Predicate.Value)
		prop := desc.CreateElement(qnames[ns] + ":" + local)
		switch t.Object.Kind {
		case graph.KindLiteral:
			prop.SetText(t.Object.Value)
		default:
			setNode(prop, t.Object, "rdf:resource")
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// setNode references an IRI through iriAttr or a blank node by rdf:nodeID.
func setNode(el *etree.Element, t graph.Term, iriAttr string) {
	if t.Kind == graph.KindBlank {
		el.CreateAttr("rdf:nodeID", t.Value)
		return
	}
	el.CreateAttr(iriAttr, t.Value)
}

// xmlNamespaces returns the prefix declarations for the document: the
// known prefixes plus generated ns<N> prefixes for other predicate
// namespaces. Predicates that cannot be written as a QName are an error.
func xmlNamespaces(triples []graph.Triple) (map[string]string, error) {
	namespaces := make(map[string]string, len(tfl.Prefixes))
	known := make(map[string]bool, len(tfl.Prefixes))
	for prefix, ns := range tfl.Prefixes {
		namespaces[prefix] = ns
		known[ns] = true
	}

	var extra []string
	for _, t := range triples {
		ns, local := splitPredicate(t.Predicate.Value)
		if ns == "" || !ncName.MatchString(local) {
			return nil, fmt.Errorf("predicate %s cannot be written as an XML name", t.Predicate.Value)
		}
		if !known[ns] {
			known[ns] = true
			extra = append(extra, ns)
		}
	}
	sort.Strings(extra)
	for i, ns := range extra {
		namespaces["ns"+strconv.Itoa(i+1)] = ns
	}
	return namespaces, nil
}

// splitPredicate splits a predicate IRI into namespace and local name,
// preferring the known prefixes and falling back to the last '#' or '/'.
func splitPredicate(iri string) (ns, local string) {
	if prefix, l, ok := splitIRI(iri); ok && ncName.MatchString(l) {
		return tfl.Prefixes[prefix], l
	}
	i := strings.LastIndexAny(iri, "#/")
	if i < 0 {
		return "", iri
	}
	return iri[:i+1], iri[i+1:]
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
