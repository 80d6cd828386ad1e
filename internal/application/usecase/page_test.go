package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagestate/internal/application/usecase"
	"github.com/bnema/pagestate/internal/domain/entity"
)

func TestLoadPage_FreshProfile(t *testing.T) {
	ctx := testContext()
	doc := loadFixture(t)

	page := usecase.LoadPage(ctx, doc, newStore(), defaultOptions())

	assert.True(t, page.HasThemeToggle())
	assert.True(t, page.HasMenuToggle())
	assert.Equal(t, entity.UIState{Theme: entity.ThemeLight, ActiveLanguage: "en"}, page.State())
	assert.Same(t, doc, page.Document())
}

func TestLoadPage_InteractionsAndReload(t *testing.T) {
	ctx := testContext()
	store := newStore()

	doc := loadFixture(t)
	page := usecase.LoadPage(ctx, doc, store, defaultOptions())

	require.NoError(t, doc.Click("#mode"))
	require.NoError(t, doc.Click(`.lang-btn[data-lang="ko"]`))
	require.NoError(t, doc.Click("#menu-trigger"))

	assert.Equal(t, entity.UIState{Theme: entity.ThemeDark, ActiveLanguage: "ko"}, page.State())
	assert.True(t, page.Menu.Blurred())

	reloaded := loadFixture(t)
	again := usecase.LoadPage(ctx, reloaded, store, defaultOptions())

	assert.Equal(t, page.State(), again.State())
	assert.False(t, again.Menu.Blurred(), "blur is never persisted")
	assert.Equal(t, hiddenFlags(doc, ".lang-item, .lang-header"), hiddenFlags(reloaded, ".lang-item, .lang-header"))
}

func TestLoadPage_ThemeTogglesTwiceRestoresState(t *testing.T) {
	ctx := testContext()
	store := newStore()
	store.Set(ctx, entity.PreferenceKeyTheme, "dark")
	doc := loadFixture(t)
	page := usecase.LoadPage(ctx, doc, store, defaultOptions())

	require.NoError(t, doc.Click("#mode"))
	assert.Equal(t, entity.ThemeLight, page.State().Theme)
	require.NoError(t, doc.Click("#mode"))

	assert.Equal(t, entity.ThemeDark, page.State().Theme)
	marker, _ := doc.Root().Attr("data-theme")
	assert.Equal(t, "dark", marker)
	stored, _ := store.Get(ctx, entity.PreferenceKeyTheme)
	assert.Equal(t, "dark", stored)
}

func TestLoadPage_BarePage(t *testing.T) {
	ctx := testContext()
	doc := parseHTML(t, `<html><body><p>static</p></body></html>`)

	page := usecase.LoadPage(ctx, doc, usecase.NewPreferenceStore(nil), defaultOptions())

	assert.False(t, page.HasThemeToggle())
	assert.False(t, page.HasMenuToggle())
	assert.Equal(t, "en", page.State().ActiveLanguage)
	assert.Empty(t, page.Languages.Buttons())
}

func TestPage_Snapshot(t *testing.T) {
	ctx := testContext()
	doc := loadFixture(t)
	page := usecase.LoadPage(ctx, doc, newStore(), defaultOptions())

	require.NoError(t, doc.Click("#menu-trigger"))
	snap := page.Snapshot()

	assert.Equal(t, entity.ThemeLight, snap.Theme)
	assert.Equal(t, "en", snap.Language)
	assert.True(t, snap.MenuBlurred)
	assert.True(t, snap.HasThemeToggle)
	assert.True(t, snap.HasMenuToggle)
	assert.Equal(t, []usecase.LanguageButton{
		{Code: "en", Active: true},
		{Code: "ko", Active: false},
	}, snap.Buttons)
	assert.Equal(t, entity.FilterResult{
		Language:       "en",
		Items:          4,
		VisibleItems:   3,
		Headers:        3,
		VisibleHeaders: 3,
	}, snap.Filter)
}
