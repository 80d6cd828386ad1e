package usecase

import (
	"context"

	"github.com/bnema/pagestate/internal/application/port"
	"github.com/bnema/pagestate/internal/domain/entity"
	"github.com/bnema/pagestate/internal/logging"
)

// PageOptions configures a page load.
type PageOptions struct {
	Contract        DOMContract
	DefaultLanguage string
}

// Page owns the UI state of one loaded document and the controllers mutating it.
type Page struct {
	doc   port.Document
	state entity.UIState

	Theme     *ThemeController
	Menu      *MenuBlurController
	Languages *LanguageFilterController

	hasTheme bool
	hasMenu  bool
}

// LoadPage runs the load-time initialization against doc:
// theme, then menu blur, then language filtering.
func LoadPage(ctx context.Context, doc port.Document, prefs Preferences, opts PageOptions) *Page {
	ctx = logging.WithComponent(ctx, "page")

	p := &Page{doc: doc}
	p.Theme = NewThemeController(prefs, doc, opts.Contract, &p.state)
	p.Menu = NewMenuBlurController(doc, opts.Contract)
	p.Languages = NewLanguageFilterController(prefs, doc, opts.Contract, opts.DefaultLanguage, &p.state)
	p.state.Theme = p.Theme.Current()

	p.hasTheme = p.Theme.Attach(ctx)
	p.hasMenu = p.Menu.Attach(ctx)
	p.Languages.Attach(ctx)

	logging.FromContext(ctx).Debug().
		Bool("theme_toggle", p.hasTheme).
		Bool("menu_toggle", p.hasMenu).
		Str("theme", string(p.state.Theme)).
		Str("lang", p.state.ActiveLanguage).
		Msg("page loaded")
	return p
}

// State returns a copy of the current UI state.
func (p *Page) State() entity.UIState {
	return p.state
}

// Document returns the document the page was loaded into.
func (p *Page) Document() port.Document {
	return p.doc
}

// HasThemeToggle reports whether the theme controller attached.
func (p *Page) HasThemeToggle() bool {
	return p.hasTheme
}

// HasMenuToggle reports whether the menu blur controller attached.
func (p *Page) HasMenuToggle() bool {
	return p.hasMenu
}

// Snapshot is a read-only view of a loaded page.
type Snapshot struct {
	Theme          entity.Theme        `json:"theme"`
	Language       string              `json:"language"`
	MenuBlurred    bool                `json:"menu_blurred"`
	HasThemeToggle bool                `json:"has_theme_toggle"`
	HasMenuToggle  bool                `json:"has_menu_toggle"`
	Buttons        []LanguageButton    `json:"buttons"`
	Filter         entity.FilterResult `json:"filter"`
}

// Snapshot captures the current UI state and the last filter result.
func (p *Page) Snapshot() Snapshot {
	return Snapshot{
		Theme:          p.state.Theme,
		Language:       p.state.ActiveLanguage,
		MenuBlurred:    p.Menu.Blurred(),
		HasThemeToggle: p.hasTheme,
		HasMenuToggle:  p.hasMenu,
		Buttons:        p.Languages.Buttons(),
		Filter:         p.Languages.LastResult(),
	}
}
