package entity

// Theme is the document-level color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a stored value to a theme. Anything but "dark" is light.
func ParseTheme(value string) Theme {
	if value == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// IsDark reports whether the theme is dark.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Opposite returns the theme a toggle switches to.
func (t Theme) Opposite() Theme {
	if t.IsDark() {
		return ThemeLight
	}
	return ThemeDark
}

// UIState mirrors the document-level markers of a loaded page.
// It is owned by the page coordinator and only changed by controller methods.
type UIState struct {
	Theme          Theme
	ActiveLanguage string
}
