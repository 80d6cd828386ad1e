package styles

import "fmt"

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// LanguageBadge renders a language code, highlighted when active.
func (t *Theme) LanguageBadge(code string, active bool) string {
	if active {
		return t.ActiveTab.Render(code)
	}
	return t.InactiveTab.Render(code)
}

// CountBadge renders "visible/total".
func (t *Theme) CountBadge(visible, total int) string {
	return t.BadgeMuted.Render(fmt.Sprintf("%d/%d", visible, total))
}
