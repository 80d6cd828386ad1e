// Package port defines the boundaries between use cases and the host environment.
package port

// DOM event names dispatched by the host.
const (
	EventClick  = "click"
	EventChange = "change"
)

// EventHandler reacts to a dispatched DOM event.
type EventHandler func()

// Document is the DOM-like environment a page runs in.
// Lookups return nil when nothing matches.
type Document interface {
	// Root returns the element carrying document-level markers.
	// Never nil.
	Root() Element

	// ElementByID returns the element with the given id.
	ElementByID(id string) Element

	// QuerySelector returns the first element matching selector in document order.
	QuerySelector(selector string) Element

	// QuerySelectorAll returns every element matching selector in document order.
	QuerySelectorAll(selector string) []Element
}

// Element is a single node of a Document.
type Element interface {
	ID() string

	// Attr returns the attribute value and whether it is present.
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)

	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)

	// Matches reports whether the element matches a CSS selector.
	Matches(selector string) bool

	// Hidden and SetHidden read and write the element's visibility.
	Hidden() bool
	SetHidden(hidden bool)

	// Checked reports the checked state of checkbox-like controls.
	Checked() bool

	// AddEventListener registers handler for the named event.
	// Handlers run in registration order.
	AddEventListener(event string, handler EventHandler)
}
