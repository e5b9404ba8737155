// Package htmldoc is an in-memory HTML document that the dismiss scheduler
// can query and mutate.
//
// A Document wraps a tree parsed by golang.org/x/net/html. Elements are
// selected by class token, addressed by their id attribute (or a generated
// handle when they have none) and hidden by writing display: none into their
// inline style. Hidden elements stay in the tree, so serialising the
// document after the dismissal delay still yields their markup.
//
// Load parses in the background and fires a readiness.Signal once the whole
// structure is available, the headless analogue of DOMContentLoaded:
//
//	doc, ready := htmldoc.Load(ctx, resp.Body)
//	dismiss.New().Run(ctx, ready, doc)
//
// FromComponent renders a templ component and parses the result, which is
// how server-rendered pages are brought into the harness in tests.
//
// All methods on Document and Element are safe for concurrent use.
package htmldoc
