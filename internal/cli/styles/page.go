package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pagestate/internal/application/usecase"
	"github.com/bnema/pagestate/internal/domain/entity"
	"github.com/bnema/pagestate/internal/infrastructure/langname"
)

// PageRenderer renders page state for terminal output.
type PageRenderer struct {
	theme *Theme
}

// NewPageRenderer creates a renderer using theme.
func NewPageRenderer(theme *Theme) *PageRenderer {
	return &PageRenderer{theme: theme}
}

// Header renders the page title line.
func (r *PageRenderer) Header(path, profile string, degraded bool) string {
	t := r.theme
	parts := []string{t.Title.Render(path), t.MutedBadge("profile " + profile)}
	if degraded {
		parts = append(parts, t.WarningStyle.Render("session only"))
	}
	return strings.Join(parts, " ")
}

// Snapshot renders the UI state and the last filter summary.
func (r *PageRenderer) Snapshot(snap usecase.Snapshot) string {
	t := r.theme
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", t.Subtle.Render("theme   "), r.themeLabel(snap))
	fmt.Fprintf(&b, "%s %s\n", t.Subtle.Render("menu    "), r.menuLabel(snap))
	fmt.Fprintf(&b, "%s %s\n", t.Subtle.Render("language"), r.languageBar(snap))
	fmt.Fprintf(&b, "%s %s items  %s headers",
		t.Subtle.Render("visible "),
		t.CountBadge(snap.Filter.VisibleItems, snap.Filter.Items),
		t.CountBadge(snap.Filter.VisibleHeaders, snap.Filter.Headers),
	)
	return b.String()
}

func (r *PageRenderer) themeLabel(snap usecase.Snapshot) string {
	label := r.theme.Normal.Render(string(snap.Theme))
	if !snap.HasThemeToggle {
		label += " " + r.theme.Subtle.Render("(no toggle)")
	}
	return label
}

func (r *PageRenderer) menuLabel(snap usecase.Snapshot) string {
	switch {
	case !snap.HasMenuToggle:
		return r.theme.Subtle.Render("no toggle")
	case snap.MenuBlurred:
		return r.theme.Highlight.Render("open (content blurred)")
	default:
		return r.theme.Normal.Render("closed")
	}
}

func (r *PageRenderer) languageBar(snap usecase.Snapshot) string {
	if len(snap.Buttons) == 0 {
		return r.theme.Normal.Render(snap.Language) + " " + r.theme.Subtle.Render("(no buttons)")
	}
	badges := make([]string, 0, len(snap.Buttons))
	anyActive := false
	for _, btn := range snap.Buttons {
		badges = append(badges, r.theme.LanguageBadge(btn.Code, btn.Active))
		anyActive = anyActive || btn.Active
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, badges...)
	if !anyActive {
		bar += " " + r.theme.WarningStyle.Render(snap.Language+" (no button)")
	}
	return bar
}

// LanguageRow is one line of the language listing.
type LanguageRow struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Button bool   `json:"button"`
	Active bool   `json:"active"`
	Items  int    `json:"items"`
}

// LanguageRows merges selector buttons with item counts. Buttons come
// first in document order, then tags only found on items, sorted.
func LanguageRows(buttons []usecase.LanguageButton, counts map[string]int) []LanguageRow {
	rows := make([]LanguageRow, 0, len(buttons)+len(counts))
	seen := make(map[string]bool, len(buttons))
	for _, btn := range buttons {
		if btn.Code == "" || seen[btn.Code] {
			continue
		}
		seen[btn.Code] = true
		rows = append(rows, LanguageRow{
			Code:   btn.Code,
			Name:   langname.Lookup(btn.Code).String(),
			Button: true,
			Active: btn.Active,
			Items:  counts[btn.Code],
		})
	}

	extra := make([]string, 0, len(counts))
	for code := range counts {
		if !seen[code] {
			extra = append(extra, code)
		}
	}
	sort.Strings(extra)
	for _, code := range extra {
		name := langname.Lookup(code).String()
		if code == "" {
			name = "any language"
		}
		rows = append(rows, LanguageRow{Code: code, Name: name, Items: counts[code]})
	}
	return rows
}

// Languages renders the language listing.
func (r *PageRenderer) Languages(rows []LanguageRow) string {
	t := r.theme
	if len(rows) == 0 {
		return t.Subtle.Render("no languages found")
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		code := row.Code
		if code == "" {
			code = "-"
		}
		marker := "  "
		if row.Active {
			marker = t.Highlight.Render("● ")
		}
		source := t.Subtle.Render("items only")
		if row.Button {
			source = t.Subtle.Render("button")
		}
		lines = append(lines, fmt.Sprintf("%s%-8s %-28s %4d  %s",
			marker, code, row.Name, row.Items, source))
	}
	return strings.Join(lines, "\n")
}

// Preferences renders stored preferences.
func (r *PageRenderer) Preferences(prefs []*entity.Preference) string {
	t := r.theme
	if len(prefs) == 0 {
		return t.Subtle.Render("no preferences stored")
	}
	lines := make([]string, 0, len(prefs))
	for _, p := range prefs {
		line := fmt.Sprintf("%-16s %s", p.Key, t.Highlight.Render(p.Value))
		if !p.UpdatedAt.IsZero() {
			line += "  " + t.Subtle.Render(p.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
