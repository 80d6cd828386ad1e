package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/bnema/pagestate/internal/application/port"
)

const (
	attrHidden  = "hidden"
	attrChecked = "checked"
)

type element struct {
	doc *Document
	sel *goquery.Selection
}

var _ port.Element = (*element)(nil)

func (e *element) node() *html.Node {
	return e.sel.Get(0)
}

func (e *element) ID() string {
	return e.sel.AttrOr("id", "")
}

func (e *element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e *element) SetAttr(name, value string) {
	e.sel.SetAttr(name, value)
}

func (e *element) RemoveAttr(name string) {
	e.sel.RemoveAttr(name)
}

func (e *element) HasClass(name string) bool {
	return e.sel.HasClass(name)
}

func (e *element) AddClass(name string) {
	e.sel.AddClass(name)
}

func (e *element) RemoveClass(name string) {
	e.sel.RemoveClass(name)
	if v, ok := e.sel.Attr("class"); ok && strings.TrimSpace(v) == "" {
		e.sel.RemoveAttr("class")
	}
}

func (e *element) Matches(selector string) bool {
	m, err := selectors.compile(selector)
	if err != nil {
		return false
	}
	return e.sel.IsMatcher(m)
}

func (e *element) Hidden() bool {
	_, ok := e.sel.Attr(attrHidden)
	return ok
}

func (e *element) SetHidden(hidden bool) {
	if hidden {
		e.sel.SetAttr(attrHidden, "")
	} else {
		e.sel.RemoveAttr(attrHidden)
	}
}

func (e *element) Checked() bool {
	_, ok := e.sel.Attr(attrChecked)
	return ok
}

func (e *element) setChecked(checked bool) {
	if checked {
		e.sel.SetAttr(attrChecked, "")
	} else {
		e.sel.RemoveAttr(attrChecked)
	}
}

// isToggle reports whether a click flips the element's checked state.
func (e *element) isToggle() bool {
	if goquery.NodeName(e.sel) != "input" {
		return false
	}
	t := strings.ToLower(e.sel.AttrOr("type", ""))
	return t == "checkbox" || t == "radio"
}

func (e *element) AddEventListener(event string, handler port.EventHandler) {
	if handler == nil {
		return
	}
	e.doc.addListener(e.node(), event, handler)
}
