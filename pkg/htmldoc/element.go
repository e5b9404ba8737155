package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
)

// Element is a handle to one node of a Document. Handles stay valid after the
// node is removed; mutations on a detached element are no-ops.
type Element struct {
	doc  *Document
	node *html.Node
	id   string
}

// ID returns the element's id attribute, or a generated handle when the
// element has none. The value is stable for the lifetime of the document.
func (e *Element) ID() string {
	return e.id
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns the value of the named attribute, or "" when absent.
func (e *Element) Attr(key string) string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return attr(e.node, key)
}

// Text returns the concatenated text content of the element.
func (e *Element) Text() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(e.node)
	return strings.TrimSpace(b.String())
}

// Hide suppresses rendering of the element by appending display: none to its
// inline style. The existing style text is kept byte for byte and the element
// stays in the document. Hiding a detached or already hidden element does
// nothing.
func (e *Element) Hide() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	if !e.doc.attachedLocked(e.node) {
		return
	}
	style := attr(e.node, "style")
	if isDisplayNone(style) {
		return
	}
	setAttr(e.node, "style", withDisplayNone(style))
}

// Hidden reports whether the element's inline style sets display: none.
func (e *Element) Hidden() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return isDisplayNone(attr(e.node, "style"))
}

// Attached reports whether the element is still part of the document.
func (e *Element) Attached() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.doc.attachedLocked(e.node)
}

// Remove detaches the element from the document.
func (e *Element) Remove() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	if p := e.node.Parent; p != nil {
		p.RemoveChild(e.node)
	}
}
