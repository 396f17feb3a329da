package export

import (
	"fmt"
	"sort"
	"strings"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatRDFXML produces RDF/XML (.rdf) output.
	FormatRDFXML Format = "rdfxml"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatRDFXML: {
		Name:        FormatRDFXML,
		MIMEType:    "application/rdf+xml",
		Extension:   ".rdf",
		Description: "RDF/XML - XML syntax for RDF",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a format by name or file extension. The empty
// string selects RDF/XML.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatRDFXML, nil
	}
	for format, info := range FormatRegistry {
		if name == string(format) || name == info.Extension || "."+name == info.Extension {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported format: %s (supported: %s)", name, strings.Join(FormatNames(), ", "))
}

// FormatNames lists the supported format identifiers in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(FormatRegistry))
	for format := range FormatRegistry {
		names = append(names, string(format))
	}
	sort.Strings(names)
	return names
}
