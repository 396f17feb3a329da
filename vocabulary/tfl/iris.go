package tfl

// Namespace is the base IRI for TfL ontology terms and station resources.
const Namespace = "http://tfl.gov.uk/tfl#"

// SchemaNamespace is the schema.org base IRI.
const SchemaNamespace = "https://schema.org/"

// RDFNamespace is the RDF syntax namespace.
const RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Schema.org property IRIs reused by the station ontology.
const (
	SchemaName        = SchemaNamespace + "name"
	SchemaDescription = SchemaNamespace + "description"
	SchemaAddress     = SchemaNamespace + "address"
	SchemaTelephone   = SchemaNamespace + "telephone"
	SchemaLocation    = SchemaNamespace + "location"
)

// Prefixes maps serialization prefixes to namespace IRIs.
var Prefixes = map[string]string{
	"rdf":    RDFNamespace,
	"schema": SchemaNamespace,
	"tfl":    Namespace,
}
