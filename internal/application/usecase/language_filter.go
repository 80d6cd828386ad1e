package usecase

import (
	"context"

	"github.com/bnema/pagestate/internal/application/port"
	"github.com/bnema/pagestate/internal/domain/entity"
	"github.com/bnema/pagestate/internal/logging"
)

// LanguageButton is a selector button as seen by callers.
type LanguageButton struct {
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

// LanguageFilterController persists the site language, keeps exactly one
// selector button active and derives item and header visibility.
type LanguageFilterController struct {
	prefs       Preferences
	doc         port.Document
	contract    DOMContract
	defaultLang string
	state       *entity.UIState

	initialized bool
	last        entity.FilterResult
}

// NewLanguageFilterController creates a language filter writing into state.
func NewLanguageFilterController(
	prefs Preferences,
	doc port.Document,
	contract DOMContract,
	defaultLang string,
	state *entity.UIState,
) *LanguageFilterController {
	if defaultLang == "" {
		defaultLang = entity.DefaultLanguage
	}
	return &LanguageFilterController{
		prefs:       prefs,
		doc:         doc,
		contract:    contract,
		defaultLang: defaultLang,
		state:       state,
	}
}

// Attach initializes the filter and registers a click handler on every button.
// Buttons without a language code are left alone.
func (c *LanguageFilterController) Attach(ctx context.Context) {
	c.Initialize(ctx)

	for _, btn := range c.doc.QuerySelectorAll(c.contract.LanguageButtonSelector) {
		code, ok := btn.Attr(c.contract.LanguageAttribute)
		if !ok || code == "" {
			continue
		}
		btn.AddEventListener(port.EventClick, func() {
			c.SwitchLanguage(ctx, code)
		})
	}
}

// Initialize reads the stored language, falling back to the default, and switches to it.
func (c *LanguageFilterController) Initialize(ctx context.Context) entity.FilterResult {
	lang, ok := c.prefs.Get(ctx, entity.PreferenceKeyLanguage)
	if !ok {
		lang = c.defaultLang
	}
	return c.SwitchLanguage(ctx, lang)
}

// SwitchLanguage persists lang, updates the language marker and the active
// button, then reapplies the filter. Unknown codes leave every button inactive.
func (c *LanguageFilterController) SwitchLanguage(ctx context.Context, lang string) entity.FilterResult {
	log := logging.FromContext(ctx)

	c.prefs.Set(ctx, entity.PreferenceKeyLanguage, lang)
	c.doc.Root().SetAttr(c.contract.LanguageMarkerAttribute, lang)
	c.state.ActiveLanguage = lang
	c.initialized = true

	matched := false
	for _, btn := range c.doc.QuerySelectorAll(c.contract.LanguageButtonSelector) {
		btn.RemoveClass(c.contract.ActiveClass)
	}
	for _, btn := range c.doc.QuerySelectorAll(c.contract.LanguageButtonSelector) {
		if code, ok := btn.Attr(c.contract.LanguageAttribute); ok && code == lang {
			btn.AddClass(c.contract.ActiveClass)
			matched = true
			break
		}
	}
	if !matched {
		log.Debug().Str("lang", lang).Msg("no selector button for language")
	}

	return c.ApplyFilter(ctx, lang)
}

// ApplyFilter recomputes and writes the visibility of every item and header.
// It is a pure function of lang and the element tags, so repeated calls are idempotent.
func (c *LanguageFilterController) ApplyFilter(ctx context.Context, lang string) entity.FilterResult {
	elems, nodes := c.scan()
	visible := entity.DeriveVisibility(nodes, lang)
	for i, el := range elems {
		el.SetHidden(!visible[i])
	}

	res := entity.Summarize(nodes, visible, lang)
	c.last = res

	logging.FromContext(ctx).Debug().
		Str("lang", lang).
		Int("items", res.Items).
		Int("visible_items", res.VisibleItems).
		Int("headers", res.Headers).
		Int("visible_headers", res.VisibleHeaders).
		Msg("language filter applied")
	return res
}

// Language returns the active language once the controller is initialized.
func (c *LanguageFilterController) Language() (string, bool) {
	if !c.initialized {
		return "", false
	}
	return c.state.ActiveLanguage, true
}

// LastResult returns the summary of the most recent filter application.
func (c *LanguageFilterController) LastResult() entity.FilterResult {
	return c.last
}

// Buttons lists the selector buttons in document order.
func (c *LanguageFilterController) Buttons() []LanguageButton {
	elems := c.doc.QuerySelectorAll(c.contract.LanguageButtonSelector)
	buttons := make([]LanguageButton, 0, len(elems))
	for _, btn := range elems {
		code, _ := btn.Attr(c.contract.LanguageAttribute)
		buttons = append(buttons, LanguageButton{
			Code:   code,
			Active: btn.HasClass(c.contract.ActiveClass),
		})
	}
	return buttons
}

// ItemLanguages counts items per language tag. Untagged items count under "".
func (c *LanguageFilterController) ItemLanguages() map[string]int {
	_, nodes := c.scan()
	counts := make(map[string]int)
	for _, n := range nodes {
		if n.Kind == entity.NodeItem {
			counts[n.Language]++
		}
	}
	return counts
}

// scan reads items and headers once, in document order.
func (c *LanguageFilterController) scan() ([]port.Element, []entity.Node) {
	selector := c.contract.ItemSelector + ", " + c.contract.HeaderSelector
	elems := c.doc.QuerySelectorAll(selector)
	nodes := make([]entity.Node, len(elems))
	for i, el := range elems {
		if el.Matches(c.contract.HeaderSelector) {
			nodes[i] = entity.Node{Kind: entity.NodeHeader}
			continue
		}
		lang, _ := el.Attr(c.contract.LanguageAttribute)
		nodes[i] = entity.Node{Kind: entity.NodeItem, Language: lang}
	}
	return elems, nodes
}
