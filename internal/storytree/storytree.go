// Package storytree reads story documents: XML trees of named, nested
// elements describing a world. It exposes only the narrow surface the world
// builder needs — sibling iteration by tag and required text/int extraction
// from named children.
package storytree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Document is a parsed story document.
type Document struct {
	doc *etree.Document
}

// Load reads and parses the story document at path.
//
// Precondition: path must point to a well-formed XML file.
// Postcondition: Returns a parsed Document or a non-nil error.
func Load(path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading story file %s: %w", path, err)
	}
	return &Document{doc: doc}, nil
}

// Parse parses a story document from raw bytes.
//
// Postcondition: Returns a parsed Document or a non-nil error.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing story document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Root returns the document's root element, which must carry the given tag.
//
// Postcondition: Returns the root element, or an error if the document has
// no root with that tag.
func (d *Document) Root(tag string) (*Element, error) {
	root := d.doc.SelectElement(tag)
	if root == nil {
		return nil, fmt.Errorf("story document: missing <%s> root", tag)
	}
	return &Element{ele: root}, nil
}

// Element is one named node of the story tree.
type Element struct {
	ele *etree.Element
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.ele.Tag
}

// Children returns all direct children with the given tag, in document order.
func (e *Element) Children(tag string) []*Element {
	var out []*Element
	for _, c := range e.ele.SelectElements(tag) {
		out = append(out, &Element{ele: c})
	}
	return out
}

// Child returns the first direct child with the given tag.
//
// Postcondition: Returns (child, true) if found, or (nil, false) otherwise.
func (e *Element) Child(tag string) (*Element, bool) {
	c := e.ele.SelectElement(tag)
	if c == nil {
		return nil, false
	}
	return &Element{ele: c}, true
}

// Text returns the trimmed text of the named child. The child is required:
// every field the world builder reads through this path must be present,
// because a record with missing identity cannot be linked later.
//
// Postcondition: Returns a non-empty string or a non-nil error.
func (e *Element) Text(tag string) (string, error) {
	c := e.ele.SelectElement(tag)
	if c == nil {
		return "", fmt.Errorf("<%s>: missing required child <%s>", e.ele.Tag, tag)
	}
	text := strings.TrimSpace(c.Text())
	if text == "" {
		return "", fmt.Errorf("<%s>: required child <%s> is empty", e.ele.Tag, tag)
	}
	return text, nil
}

// Int returns the integer value of the named child's text. The child is
// required and its text must parse as an integer.
func (e *Element) Int(tag string) (int, error) {
	text, err := e.Text(tag)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("<%s>: child <%s>: %q is not an integer", e.ele.Tag, tag, text)
	}
	return n, nil
}

// Value returns the element's own trimmed text, for elements whose payload
// is the value itself (connection <id> entries, the world <title>).
func (e *Element) Value() string {
	return strings.TrimSpace(e.ele.Text())
}

// IntValue parses the element's own text as an integer.
func (e *Element) IntValue() (int, error) {
	text := e.Value()
	if text == "" {
		return 0, fmt.Errorf("<%s>: element has no text", e.ele.Tag)
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("<%s>: %q is not an integer", e.ele.Tag, text)
	}
	return n, nil
}
