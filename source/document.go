package source

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// ErrNoRoot is returned when a document parses but has no root element.
var ErrNoRoot = errors.New("document has no root element")

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	// Feeds declaring a non-UTF-8 encoding are decoded via x/net.
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	return doc
}

// Parse parses an XML document.
func Parse(data []byte) (*etree.Document, error) {
	doc := newDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("parse xml: %w", ErrNoRoot)
	}
	return doc, nil
}

// LoadFile parses the XML document stored at path.
func LoadFile(path string) (*etree.Document, error) {
	doc := newDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("load %s: %w", path, ErrNoRoot)
	}
	return doc, nil
}

// WriteFile writes doc to path, indented by indent spaces. The document
// itself is not modified.
func WriteFile(doc *etree.Document, path string, indent int) error {
	out := doc.Copy()
	out.Indent(indent)
	if err := out.WriteToFile(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
