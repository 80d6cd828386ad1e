// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/pagestate/internal/cli"
	"github.com/bnema/pagestate/internal/cli/styles"
	"github.com/bnema/pagestate/internal/logging"
)

// PageModel is the Bubble Tea model for the interactive page view.
type PageModel struct {
	help     help.Model
	keys     styles.PageKeyMap
	showHelp bool
	width    int
	height   int
	status   string
	err      error

	session  *cli.PageSession
	theme    *styles.Theme
	renderer *styles.PageRenderer
}

// NewPageModel creates the interactive view over an opened page.
func NewPageModel(session *cli.PageSession) PageModel {
	log := logging.FromContext(session.Ctx())
	log.Debug().Str("page", session.Path).Msg("creating page model")

	m := PageModel{
		keys:    styles.DefaultPageKeyMap(),
		session: session,
		width:   80,
		height:  24,
	}
	m.applyTheme()
	return m
}

// PageReloadedMsg reports that the page file changed on disk.
type PageReloadedMsg struct{}

// Init implements tea.Model.
func (m PageModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case PageReloadedMsg:
		return m.reload(), nil
	}
	return m, nil
}

func (m PageModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Theme):
		m.session.ToggleTheme()
		m.status = "theme " + string(m.session.Page.State().Theme)
	case key.Matches(msg, m.keys.Menu):
		if m.session.ToggleMenu() {
			m.status = "menu toggled"
		} else {
			m.status = "page has no menu toggle"
		}
	case key.Matches(msg, m.keys.NextLang):
		m.err = m.session.CycleLanguage(1)
		m.status = "language " + m.session.Page.State().ActiveLanguage
	case key.Matches(msg, m.keys.PrevLang):
		m.err = m.session.CycleLanguage(-1)
		m.status = "language " + m.session.Page.State().ActiveLanguage
	case key.Matches(msg, m.keys.Reload):
		return m.reload(), nil
	}
	m.applyTheme()
	return m, nil
}

func (m PageModel) reload() PageModel {
	if err := m.session.Reload(); err != nil {
		m.err = err
		return m
	}
	m.status = "reloaded"
	m.applyTheme()
	return m
}

// applyTheme follows the page's own light or dark state.
func (m *PageModel) applyTheme() {
	mode := m.session.Page.State().Theme
	if m.theme != nil && m.theme.Mode == mode {
		return
	}
	m.theme = styles.NewTheme(mode)
	m.renderer = styles.NewPageRenderer(m.theme)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = m.width
}

// View implements tea.Model.
func (m PageModel) View() string {
	report := m.session.Report()

	var b strings.Builder
	b.WriteString(m.renderer.Header(report.Page, report.Profile, report.Degraded))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Box.Render(m.renderer.Snapshot(report.Snapshot)))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.theme.ErrorStyle.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(m.theme.Subtle.Render(m.status))
	}
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return b.String()
}
