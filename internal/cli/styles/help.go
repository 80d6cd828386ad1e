package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// PageKeyMap defines keybindings for the interactive page view.
type PageKeyMap struct {
	Theme    key.Binding
	Menu     key.Binding
	PrevLang key.Binding
	NextLang key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Menu, k.PrevLang, k.NextLang, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Theme, k.Menu},
		{k.PrevLang, k.NextLang},
		{k.Reload, k.Help, k.Quit},
	}
}

// DefaultPageKeyMap returns the default page keybindings.
func DefaultPageKeyMap() PageKeyMap {
	return PageKeyMap{
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle menu"),
		),
		PrevLang: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev language"),
		),
		NextLang: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next language"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a help model styled with the theme.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
