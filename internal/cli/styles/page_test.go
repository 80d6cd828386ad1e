package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagestate/internal/application/usecase"
	"github.com/bnema/pagestate/internal/domain/entity"
)

func TestLanguageRows(t *testing.T) {
	buttons := []usecase.LanguageButton{
		{Code: "ko", Active: true},
		{Code: "en"},
		{Code: ""},
	}
	counts := map[string]int{"en": 2, "ko": 1, "fr": 1, "": 3}

	rows := LanguageRows(buttons, counts)
	require.Len(t, rows, 4)

	assert.Equal(t, LanguageRow{Code: "ko", Name: "Korean (한국어)", Button: true, Active: true, Items: 1}, rows[0])
	assert.Equal(t, "en", rows[1].Code)
	assert.Equal(t, 2, rows[1].Items)
	assert.Equal(t, LanguageRow{Code: "", Name: "any language", Items: 3}, rows[2])
	assert.Equal(t, "fr", rows[3].Code)
	assert.False(t, rows[3].Button)
}

func TestPageRenderer_Snapshot(t *testing.T) {
	r := NewPageRenderer(NewTheme(entity.ThemeDark))

	out := r.Snapshot(usecase.Snapshot{
		Theme:          entity.ThemeDark,
		Language:       "de",
		HasThemeToggle: true,
		Buttons:        []usecase.LanguageButton{{Code: "en"}, {Code: "ko"}},
		Filter:         entity.FilterResult{Language: "de", Items: 4, VisibleItems: 1, Headers: 3, VisibleHeaders: 1},
	})

	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "no toggle")
	assert.Contains(t, out, "de (no button)")
	assert.Contains(t, out, "1/4")
	assert.Contains(t, out, "1/3")
}

func TestPageRenderer_Preferences(t *testing.T) {
	r := NewPageRenderer(NewTheme(entity.ThemeLight))

	assert.Contains(t, r.Preferences(nil), "no preferences stored")

	out := r.Preferences([]*entity.Preference{{Key: entity.PreferenceKeyTheme, Value: "dark"}})
	assert.Contains(t, out, "theme")
	assert.Contains(t, out, "dark")
}

func TestNewTheme_FollowsMode(t *testing.T) {
	dark := NewTheme(entity.ThemeDark)
	light := NewTheme(entity.ThemeLight)

	assert.Equal(t, entity.ThemeDark, dark.Mode)
	assert.Equal(t, entity.ThemeLight, light.Mode)
	assert.NotEqual(t, dark.Background, light.Background)
}

func TestNewStyledHelp_UsesThemeHelpStyles(t *testing.T) {
	for _, mode := range []entity.Theme{entity.ThemeLight, entity.ThemeDark} {
		theme := NewTheme(mode)
		h := NewStyledHelp(theme)

		assert.Equal(t, theme.HelpKey.GetForeground(), h.Styles.ShortKey.GetForeground(), mode)
		assert.Equal(t, theme.HelpDesc.GetForeground(), h.Styles.FullDesc.GetForeground(), mode)
	}
}
