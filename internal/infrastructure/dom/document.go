// Package dom implements port.Document on top of a goquery-parsed HTML page.
package dom

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/bnema/pagestate/internal/application/port"
)

// ErrElementNotFound is returned when a dispatch target matches nothing.
var ErrElementNotFound = errors.New("element not found")

const defaultRootSelector = "body"

// Options configures how a page is parsed.
type Options struct {
	// RootSelector selects the element carrying document-level markers.
	RootSelector string
}

// Document is an in-memory HTML page with a single-threaded event loop.
type Document struct {
	doc  *goquery.Document
	root *element

	mu        sync.Mutex
	listeners map[*html.Node]map[string][]port.EventHandler
	queue     []pendingEvent
	draining  bool
}

type pendingEvent struct {
	node  *html.Node
	event string
}

var _ port.Document = (*Document)(nil)

// Parse reads an HTML page from r.
func Parse(r io.Reader, opts Options) (*Document, error) {
	gq, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	d := &Document{
		doc:       gq,
		listeners: make(map[*html.Node]map[string][]port.EventHandler),
	}

	rootSel := opts.RootSelector
	if rootSel == "" {
		rootSel = defaultRootSelector
	}
	root := d.QuerySelector(rootSel)
	if root == nil {
		root = d.QuerySelector("html")
	}
	if root == nil {
		return nil, fmt.Errorf("failed to locate root element %q", rootSel)
	}
	d.root = root.(*element)
	return d, nil
}

// Load parses the HTML page stored at path.
func Load(path string, opts Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, opts)
}

// Root implements port.Document.
func (d *Document) Root() port.Element {
	return d.root
}

// ElementByID implements port.Document.
func (d *Document) ElementByID(id string) port.Element {
	if id == "" {
		return nil
	}
	return d.QuerySelector(fmt.Sprintf("[id=%q]", id))
}

// QuerySelector implements port.Document.
func (d *Document) QuerySelector(selector string) port.Element {
	sel := d.find(selector)
	if sel.Length() == 0 {
		return nil
	}
	return d.wrap(sel.First())
}

// QuerySelectorAll implements port.Document.
func (d *Document) QuerySelectorAll(selector string) []port.Element {
	sel := d.find(selector)
	elems := make([]port.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elems = append(elems, d.wrap(s))
	})
	return elems
}

// Render writes the current state of the page as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.doc.Get(0)); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

// find returns an empty selection for selectors that do not compile.
func (d *Document) find(selector string) *goquery.Selection {
	m, err := selectors.compile(selector)
	if err != nil {
		return d.doc.FindNodes()
	}
	return d.doc.FindMatcher(m)
}

func (d *Document) wrap(s *goquery.Selection) *element {
	return &element{doc: d, sel: s}
}

// ValidSelector reports whether selector is a valid CSS selector group.
func ValidSelector(selector string) bool {
	_, err := selectors.compile(selector)
	return err == nil
}
