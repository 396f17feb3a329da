// Package export serializes station graphs as RDF/XML, N-Triples or Turtle.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/stationgraph/graph"
	"github.com/c360studio/stationgraph/vocabulary/tfl"
)

// Write serializes g to w in the given format. Output is sorted, so equal
// graphs always produce identical bytes.
func Write(w io.Writer, g *graph.Graph, format Format) error {
	switch format {
	case FormatRDFXML:
		return writeRDFXML(w, g)
	case FormatNTriples:
		return writeNTriples(w, g)
	case FormatTurtle:
		return writeTurtle(w, g)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile serializes g to the file at path.
func WriteFile(path string, g *graph.Graph, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, g, format); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// writeNTriples writes one line per triple.
func writeNTriples(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for _, t := range g.Triples() {
		bw.WriteString(t.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// writeTurtle groups triples by subject and abbreviates IRIs with the
// known prefixes where the local part allows it.
func writeTurtle(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)

	for _, prefix := range sortedPrefixes() {
		fmt.Fprintf(bw, "@prefix %s: <%s> .\n", prefix, tfl.Prefixes[prefix])
	}

	triples := g.Triples()
	for i, t := range triples {
		if i == 0 || triples[i-1].Subject != t.Subject {
			bw.WriteString("\n")
			bw.WriteString(turtleTerm(t.Subject))
			bw.WriteString("\n")
		}
		bw.WriteString("    ")
		bw.WriteString(turtleTerm(t.Predicate))
		bw.WriteString(" ")
		bw.WriteString(turtleTerm(t.Object))
		if i+1 < len(triples) && triples[i+1].Subject == t.Subject {
			bw.WriteString(" ;\n")
		} else {
			bw.WriteString(" .\n")
		}
	}
	return bw.Flush()
}

var turtleLocal = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

func turtleTerm(t graph.Term) string {
	if t.Kind == graph.KindIRI {
		if prefix, local, ok := splitIRI(t.Value); ok && turtleLocal.MatchString(local) {
			return prefix + ":" + local
		}
	}
	return t.String()
}

// splitIRI finds the known prefix whose namespace starts iri.
func splitIRI(iri string) (prefix, local string, ok bool) {
	for _, p := range sortedPrefixes() {
		if ns := tfl.Prefixes[p]; strings.HasPrefix(iri, ns) {
			return p, iri[len(ns):], true
		}
	}
	return "", "", false
}

func sortedPrefixes() []string {
	prefixes := make([]string, 0, len(tfl.Prefixes))
	for p := range tfl.Prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	return prefixes
}
