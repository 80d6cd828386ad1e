package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagestate/internal/domain/entity"
	"github.com/bnema/pagestate/internal/infrastructure/config"
	"github.com/bnema/pagestate/internal/infrastructure/dom"
)

const fixture = "testdata/page.html"

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := NewMemoryApp(context.Background(), config.DefaultConfig())
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestOpenPage_FreshProfile(t *testing.T) {
	s, err := newTestApp(t).OpenPage(fixture)
	require.NoError(t, err)

	r := s.Report()
	assert.Equal(t, fixture, r.Page)
	assert.Equal(t, "default", r.Profile)
	assert.False(t, r.Degraded)
	assert.Equal(t, entity.ThemeLight, r.Theme)
	assert.Equal(t, "en", r.Language)
	assert.Equal(t, 3, r.Filter.VisibleItems)
}

func TestOpenPage_MissingFile(t *testing.T) {
	_, err := newTestApp(t).OpenPage(filepath.Join(t.TempDir(), "absent.html"))
	assert.Error(t, err)
}

func TestPageSession_StateSurvivesReload(t *testing.T) {
	s, err := newTestApp(t).OpenPage(fixture)
	require.NoError(t, err)

	s.ToggleTheme()
	require.NoError(t, s.SelectLanguage("ko"))
	assert.True(t, s.ToggleMenu())

	before := s.Report()
	assert.Equal(t, entity.ThemeDark, before.Theme)
	assert.Equal(t, "ko", before.Language)
	assert.True(t, before.MenuBlurred)

	require.NoError(t, s.Reload())
	after := s.Report()
	assert.Equal(t, entity.ThemeDark, after.Theme)
	assert.Equal(t, "ko", after.Language)
	assert.False(t, after.MenuBlurred, "menu state is not persisted")
}

func TestPageSession_SelectLanguageWithoutButton(t *testing.T) {
	s, err := newTestApp(t).OpenPage(fixture)
	require.NoError(t, err)

	require.NoError(t, s.SelectLanguage("de"))
	r := s.Report()
	assert.Equal(t, "de", r.Language)
	assert.Equal(t, 1, r.Filter.VisibleItems)
	for _, b := range r.Buttons {
		assert.False(t, b.Active, b.Code)
	}
}

func TestPageSession_CycleLanguage(t *testing.T) {
	s, err := newTestApp(t).OpenPage(fixture)
	require.NoError(t, err)

	require.NoError(t, s.CycleLanguage(1))
	assert.Equal(t, "ko", s.Report().Language)
	require.NoError(t, s.CycleLanguage(1))
	assert.Equal(t, "en", s.Report().Language)
	require.NoError(t, s.CycleLanguage(-1))
	assert.Equal(t, "ko", s.Report().Language)
}

func TestPageSession_ClickUnknownTarget(t *testing.T) {
	s, err := newTestApp(t).OpenPage(fixture)
	require.NoError(t, err)

	err = s.Click("#nope")
	assert.ErrorIs(t, err, dom.ErrElementNotFound)
}

func TestPageSession_WriteHTML(t *testing.T) {
	s, err := newTestApp(t).OpenPage(fixture)
	require.NoError(t, err)
	s.ToggleTheme()

	out := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, s.WriteHTML(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `data-theme="dark"`)
	assert.Contains(t, string(data), `data-lang="en"`)
}

func TestNewApp_FallsBackToSessionStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	// A regular file where the profile directory should be makes the store unusable.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	t.Setenv("PAGESTATE_DATABASE_PATH", filepath.Join(blocker, "profile.db"))

	app, err := NewApp(Options{})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.True(t, app.Preferences.Degraded())
	s, err := app.OpenPage(fixture)
	require.NoError(t, err)
	require.NoError(t, s.SelectLanguage("ko"))
	require.NoError(t, s.Reload())
	assert.Equal(t, "ko", s.Report().Language)
}

func TestNewApp_PersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	first, err := NewApp(Options{Profile: "work"})
	require.NoError(t, err)
	s, err := first.OpenPage(fixture)
	require.NoError(t, err)
	s.ToggleTheme()
	require.NoError(t, first.Close())

	second, err := NewApp(Options{Profile: "work"})
	require.NoError(t, err)
	defer func() { _ = second.Close() }()
	assert.False(t, second.Preferences.Degraded())

	s, err = second.OpenPage(fixture)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, s.Report().Theme)

	other, err := NewApp(Options{Profile: "guest"})
	require.NoError(t, err)
	defer func() { _ = other.Close() }()
	s, err = other.OpenPage(fixture)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, s.Report().Theme)
}

func TestPageSession_SelectLanguageWithSelectorGroup(t *testing.T) {
	page := filepath.Join(t.TempDir(), "group.html")
	require.NoError(t, os.WriteFile(page, []byte(`<html><body>
  <button class="lang-btn" data-lang="en">EN</button>
  <button class="lang-pill" data-lang="ko">KO</button>
  <div class="wrapper">
    <article class="lang-item" data-lang="en">Hello</article>
    <article class="lang-item" data-lang="ko">Annyeong</article>
  </div>
</body></html>`), 0o644))

	cfg := config.DefaultConfig()
	cfg.DOM.LanguageButtonSelector = ".lang-btn, .lang-pill"
	app := NewMemoryApp(context.Background(), cfg)
	t.Cleanup(func() { _ = app.Close() })

	s, err := app.OpenPage(page)
	require.NoError(t, err)
	require.NoError(t, s.SelectLanguage("ko"))

	r := s.Report()
	assert.Equal(t, "ko", r.Language)
	require.Len(t, r.Buttons, 2)
	for _, b := range r.Buttons {
		assert.Equal(t, b.Code == "ko", b.Active, b.Code)
	}

	v, ok := app.Preferences.Get(s.Ctx(), entity.PreferenceKeyLanguage)
	assert.True(t, ok)
	assert.Equal(t, "ko", v)
}
