package htmldoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dmitrymomot/alertdismiss/pkg/dismiss"
	"github.com/dmitrymomot/alertdismiss/pkg/readiness"
)

// Document is a mutable HTML tree.
type Document struct {
	mu      sync.Mutex
	root    *html.Node
	handles map[*html.Node]*Element
	err     error
}

func newDocument() *Document {
	return &Document{
		root:    &html.Node{Type: html.DocumentNode},
		handles: make(map[*html.Node]*Element),
	}
}

// Parse reads a complete HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	doc := newDocument()
	doc.root = root
	return doc, nil
}

// ParseString parses s as a complete HTML document.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FromComponent renders c and parses the output.
func FromComponent(ctx context.Context, c templ.Component) (*Document, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, errors.Join(ErrRender, err)
	}
	return Parse(&buf)
}

// Load parses r in a background goroutine and returns the document
// immediately together with a signal that fires once parsing has finished.
// Until then the document is empty. A read or parse failure leaves the
// document empty, is reported by Err, and still fires the signal. If ctx ends
// before parsing finishes the signal never fires and Err returns ctx.Err().
// When r is an io.Closer it is closed on cancellation so a stalled read
// unblocks; a plain io.Reader is read until it returns.
func Load(ctx context.Context, r io.Reader) (*Document, *readiness.Signal) {
	doc := newDocument()
	ready := readiness.New()

	go func() {
		if c, ok := r.(io.Closer); ok {
			stop := context.AfterFunc(ctx, func() { _ = c.Close() })
			defer stop()
		}

		root, err := html.Parse(r)

		doc.mu.Lock()
		if ctxErr := ctx.Err(); ctxErr != nil {
			doc.err = ctxErr
			doc.mu.Unlock()
			return
		}
		if err != nil {
			doc.err = errors.Join(ErrParse, err)
		} else {
			doc.root = root
		}
		doc.mu.Unlock()

		ready.Fire()
	}()

	return doc, ready
}

// Err returns the error recorded by Load, if any.
func (d *Document) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Query returns a snapshot of the elements carrying the class token category,
// in document order.
func (d *Document) Query(category string) []dismiss.Element {
	els := d.Elements(category)
	out := make([]dismiss.Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out
}

// Elements is Query with the concrete element type.
func (d *Document) Elements(category string) []*Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []*Element
	walk(d.root, func(n *html.Node) bool {
		if hasClass(n, category) {
			out = append(out, d.handleLocked(n))
		}
		return true
	})
	return out
}

// Element looks up an attached element by its handle: the id attribute, or
// the generated id of an element previously returned by Query.
func (d *Document) Element(id string) (*Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if n := d.findLocked(id); n != nil {
		return d.handleLocked(n), nil
	}
	return nil, ErrElementNotFound
}

// Append parses fragment in the context of the element addressed by parentID
// and appends the resulting nodes as its last children.
func (d *Document) Append(parentID, fragment string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	parent := d.findLocked(parentID)
	if parent == nil {
		return fmt.Errorf("%w: %q", ErrElementNotFound, parentID)
	}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), parent)
	if err != nil {
		return errors.Join(ErrParse, err)
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
	return nil
}

// HTML serialises the current state of the document.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTo writes the serialised document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	d.mu.Lock()
	err := html.Render(&buf, d.root)
	d.mu.Unlock()
	if err != nil {
		return 0, errors.Join(ErrRender, err)
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

func (d *Document) handleLocked(n *html.Node) *Element {
	if el, ok := d.handles[n]; ok {
		return el
	}
	id := attr(n, "id")
	if id == "" {
		id = uuid.NewString()
	}
	el := &Element{doc: d, node: n, id: id}
	d.handles[n] = el
	return el
}

func (d *Document) findLocked(id string) *html.Node {
	if id == "" {
		return nil
	}
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if attr(n, "id") == id {
			found = n
			return false
		}
		if el, ok := d.handles[n]; ok && el.id == id {
			found = n
			return false
		}
		return true
	})
	return found
}

func (d *Document) attachedLocked(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == d.root {
			return true
		}
	}
	return false
}

// walk visits element nodes depth-first in document order until visit
// returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if n.Type == html.ElementNode {
		if !visit(n) {
			return false
		}
		// Template contents are inert markup, not part of the rendered tree.
		if n.DataAtom == atom.Template {
			return true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func hasClass(n *html.Node, class string) bool {
	if class == "" {
		return false
	}
	for _, tok := range strings.FieldsFunc(attr(n, "class"), isASCIISpace) {
		if tok == class {
			return true
		}
	}
	return false
}

// isASCIISpace matches the HTML whitespace set used to split class lists.
func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
