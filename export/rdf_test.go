package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/stationgraph/export"
	"github.com/c360studio/stationgraph/graph"
	"github.com/c360studio/stationgraph/vocabulary/tfl"
)

func sampleGraph() *graph.Graph {
	g := graph.New()
	bank := graph.IRI(tfl.Namespace + "Bank")
	toilet := graph.Blank("BankToilet0")
	g.Add(bank, graph.IRI(tfl.SchemaName), graph.Literal("Bank"))
	g.Add(bank, graph.IRI(tfl.Namespace+"hasToilet"), toilet)
	g.Add(bank, graph.IRI(tfl.Namespace+"servesLine"), graph.IRI("http://example.org/lines/Central"))
	g.Add(toilet, graph.IRI(tfl.SchemaLocation), graph.Literal(`Ticket hall "B" & <lower>`))
	g.Add(toilet, graph.IRI("http://example.org/vocab#accessible"), graph.Literal("yes"))
	return g
}

func TestWrite_RDFXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, sampleGraph(), export.FormatRDFXML))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "rdf:RDF", root.FullTag())
	assert.Equal(t, tfl.Namespace, root.SelectAttrValue("xmlns:tfl", ""))
	assert.Equal(t, "http://example.org/vocab#", root.SelectAttrValue("xmlns:ns1", ""))

	descriptions := root.SelectElements("Description")
	require.Len(t, descriptions, 2)

	bank := descriptions[0]
	assert.Equal(t, tfl.Namespace+"Bank", bank.SelectAttrValue("rdf:about", ""))
	assert.Equal(t, "Bank", bank.SelectElement("schema:name").Text())
	assert.Equal(t, "BankToilet0", bank.SelectElement("tfl:hasToilet").SelectAttrValue("rdf:nodeID", ""))
	assert.Equal(t, "http://example.org/lines/Central", bank.SelectElement("tfl:servesLine").SelectAttrValue("rdf:resource", ""))

	toilet := descriptions[1]
	assert.Equal(t, "BankToilet0", toilet.SelectAttrValue("rdf:nodeID", ""))
	assert.Equal(t, `Ticket hall "B" & <lower>`, toilet.SelectElement("schema:location").Text())
	assert.Equal(t, "yes", toilet.SelectElement("ns1:accessible").Text())
}

func TestWrite_Deterministic(t *testing.T) {
	for _, format := range export.FormatNames() {
		t.Run(format, func(t *testing.T) {
			var first, second bytes.Buffer
			require.NoError(t, export.Write(&first, sampleGraph(), export.Format(format)))
			require.NoError(t, export.Write(&second, sampleGraph(), export.Format(format)))
			assert.Equal(t, first.Bytes(), second.Bytes())
		})
	}
}

func TestWrite_NTriples(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, sampleGraph(), export.FormatNTriples))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines, `<http://tfl.gov.uk/tfl#Bank> <https://schema.org/name> "Bank" .`)
	assert.Contains(t, lines, `<http://tfl.gov.uk/tfl#Bank> <http://tfl.gov.uk/tfl#hasToilet> _:BankToilet0 .`)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, " ."), line)
	}
}

func TestWrite_Turtle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, sampleGraph(), export.FormatTurtle))
	out := buf.String()

	assert.Contains(t, out, "@prefix tfl: <http://tfl.gov.uk/tfl#> .")
	assert.Contains(t, out, "@prefix schema: <https://schema.org/> .")
	assert.Contains(t, out, "tfl:Bank\n")
	// Predicates sort by IRI, so schema.org terms come last.
	assert.Contains(t, out, "    tfl:hasToilet _:BankToilet0 ;")
	assert.Contains(t, out, `    schema:name "Bank" .`)
	assert.Contains(t, out, "<http://example.org/vocab#accessible>")
	assert.Equal(t, 2, strings.Count(out, " .\n")-len(tfl.Prefixes))
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := export.Write(&buf, sampleGraph(), export.Format("jsonld"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestWrite_RDFXMLRejectsUnsplittablePredicate(t *testing.T) {
	g := graph.New()
	g.Add(graph.IRI(tfl.Namespace+"Bank"), graph.IRI(tfl.Namespace+"has 1"), graph.Literal("x"))

	var buf bytes.Buffer
	require.Error(t, export.Write(&buf, g, export.FormatRDFXML))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "final.rdf")
	require.NoError(t, export.WriteFile(path, sampleGraph(), export.FormatRDFXML))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `<?xml version="1.0" encoding="UTF-8"?>`))

	err = export.WriteFile(filepath.Join(t.TempDir(), "missing", "final.rdf"), sampleGraph(), export.FormatRDFXML)
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    export.Format
		wantErr bool
	}{
		{in: "", want: export.FormatRDFXML},
		{in: "rdfxml", want: export.FormatRDFXML},
		{in: "NTriples", want: export.FormatNTriples},
		{in: ".ttl", want: export.FormatTurtle},
		{in: "nt", want: export.FormatNTriples},
		{in: "jsonld", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := export.ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRegistry(t *testing.T) {
	for _, name := range export.FormatNames() {
		info, ok := export.GetFormatInfo(export.Format(name))
		require.True(t, ok, name)
		assert.NotEmpty(t, info.MIMEType)
		assert.True(t, strings.HasPrefix(info.Extension, "."))
	}
}
