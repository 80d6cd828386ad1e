package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/bnema/pagestate/internal/application/usecase"
	"github.com/bnema/pagestate/internal/infrastructure/dom"
	"github.com/bnema/pagestate/internal/logging"
)

const outputPerm = 0o644

// PageSession is one loaded page plus the means to reload it.
type PageSession struct {
	Path string
	Doc  *dom.Document
	Page *usecase.Page

	app *App
	ctx context.Context
}

// OpenPage parses the page at path and runs the load-time initialization.
func (a *App) OpenPage(path string) (*PageSession, error) {
	s := &PageSession{
		Path: path,
		app:  a,
		ctx:  logging.WithPage(a.ctx, path),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the page file and loads it again against the same store,
// the way a browser reload does.
func (s *PageSession) Reload() error {
	doc, err := dom.Load(s.Path, dom.Options{RootSelector: s.app.Config.DOM.RootSelector})
	if err != nil {
		return err
	}
	s.Doc = doc
	s.Page = usecase.LoadPage(s.ctx, doc, s.app.Preferences, s.app.Config.PageOptions())
	return nil
}

// Ctx returns the page-scoped context.
func (s *PageSession) Ctx() context.Context {
	return s.ctx
}

// Click dispatches a click on the first element matching selector.
func (s *PageSession) Click(selector string) error {
	return s.Doc.Click(selector)
}

// SelectLanguage clicks the button for code, or switches directly when the
// page has no such button.
func (s *PageSession) SelectLanguage(code string) error {
	contract := s.app.Config.Contract()
	for _, el := range s.Doc.QuerySelectorAll(contract.LanguageButtonSelector) {
		if v, ok := el.Attr(contract.LanguageAttribute); ok && v == code {
			s.Doc.ClickElement(el)
			return nil
		}
	}
	s.Page.Languages.SwitchLanguage(s.ctx, code)
	return nil
}

// CycleLanguage activates the next (delta=1) or previous (delta=-1) button.
func (s *PageSession) CycleLanguage(delta int) error {
	buttons := s.Page.Languages.Buttons()
	codes := make([]string, 0, len(buttons))
	current := -1
	for _, b := range buttons {
		if b.Code == "" {
			continue
		}
		if b.Active {
			current = len(codes)
		}
		codes = append(codes, b.Code)
	}
	if len(codes) == 0 {
		return nil
	}
	next := 0
	if current >= 0 {
		next = ((current+delta)%len(codes) + len(codes)) % len(codes)
	}
	return s.SelectLanguage(codes[next])
}

// ToggleTheme clicks the theme control, or toggles directly when the page has none.
func (s *PageSession) ToggleTheme() {
	if el := s.Doc.ElementByID(s.app.Config.DOM.ThemeToggleID); el != nil {
		s.Doc.ClickElement(el)
		return
	}
	s.Page.Theme.Toggle(s.ctx)
}

// ToggleMenu clicks the menu control. Pages without one are left unchanged.
func (s *PageSession) ToggleMenu() bool {
	el := s.Doc.ElementByID(s.app.Config.DOM.MenuToggleID)
	if el == nil {
		return false
	}
	s.Doc.ClickElement(el)
	return true
}

// HTML renders the current document.
func (s *PageSession) HTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Doc.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteHTML renders the current document to path.
func (s *PageSession) WriteHTML(path string) error {
	data, err := s.HTML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, outputPerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Report collects what the CLI prints after an operation.
func (s *PageSession) Report() Report {
	return Report{
		Page:     s.Path,
		Profile:  s.app.Config.Profile,
		Degraded: s.app.Preferences.Degraded(),
		Snapshot: s.Page.Snapshot(),
	}
}

// Report is the machine-readable outcome of a page operation.
type Report struct {
	Page     string `json:"page"`
	Profile  string `json:"profile"`
	Degraded bool   `json:"degraded"`
	usecase.Snapshot
}
