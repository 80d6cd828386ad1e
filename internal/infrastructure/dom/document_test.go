package dom_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagestate/internal/application/port"
	"github.com/bnema/pagestate/internal/infrastructure/dom"
)

func loadFixture(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.Load(filepath.Join("testdata", "page.html"), dom.Options{})
	require.NoError(t, err)
	return doc
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dom.Load(filepath.Join(t.TempDir(), "nope.html"), dom.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open page")
}

func TestDocument_Lookup(t *testing.T) {
	doc := loadFixture(t)

	assert.NotNil(t, doc.ElementByID("mode"))
	assert.Nil(t, doc.ElementByID("missing"))
	assert.Nil(t, doc.ElementByID(""))
	assert.Nil(t, doc.QuerySelector(".nothing"))
	assert.Nil(t, doc.QuerySelector("[[invalid"))
	assert.Empty(t, doc.QuerySelectorAll("[[invalid"))

	buttons := doc.QuerySelectorAll(".lang-btn")
	require.Len(t, buttons, 2)
	code, ok := buttons[1].Attr("data-lang")
	assert.True(t, ok)
	assert.Equal(t, "ko", code)
}

func TestDocument_QuerySelectorAllKeepsDocumentOrder(t *testing.T) {
	doc := loadFixture(t)

	elems := doc.QuerySelectorAll(".lang-item, .lang-header")

	kinds := make([]string, len(elems))
	for i, el := range elems {
		if el.Matches(".lang-header") {
			kinds[i] = "h"
		} else {
			kinds[i] = "i"
		}
	}
	assert.Equal(t, "hiihihi", strings.Join(kinds, ""))
}

func TestDocument_RootDefaultsToBody(t *testing.T) {
	doc := loadFixture(t)

	doc.Root().SetAttr("data-theme", "dark")

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Contains(t, buf.String(), `<body data-theme="dark">`)
}

func TestDocument_CustomRoot(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(`<html><body></body></html>`), dom.Options{RootSelector: "html"})
	require.NoError(t, err)

	doc.Root().SetAttr("data-lang", "ko")

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Contains(t, buf.String(), `<html data-lang="ko">`)
}

func TestElement_ClassesAndVisibility(t *testing.T) {
	doc := loadFixture(t)
	el := doc.QuerySelector(".wrapper")
	require.NotNil(t, el)

	el.AddClass("blurry")
	assert.True(t, el.HasClass("blurry"))
	el.RemoveClass("blurry")
	assert.False(t, el.HasClass("blurry"))
	assert.True(t, el.HasClass("wrapper"))

	assert.False(t, el.Hidden())
	el.SetHidden(true)
	assert.True(t, el.Hidden())
	el.SetHidden(false)
	assert.False(t, el.Hidden())
}

func TestElement_RemoveLastClassDropsAttribute(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(`<p id="x" class="active">x</p>`), dom.Options{})
	require.NoError(t, err)

	el := doc.ElementByID("x")
	el.RemoveClass("active")

	_, ok := el.Attr("class")
	assert.False(t, ok)
}

func TestDispatch_RunsHandlersInOrder(t *testing.T) {
	doc := loadFixture(t)
	el := doc.ElementByID("mode")

	var calls []string
	el.AddEventListener(port.EventClick, func() { calls = append(calls, "a") })
	el.AddEventListener(port.EventClick, func() { calls = append(calls, "b") })
	el.AddEventListener(port.EventChange, func() { calls = append(calls, "change") })

	require.NoError(t, doc.Click("#mode"))

	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestDispatch_NestedEventRunsAfterCurrentHandler(t *testing.T) {
	doc := loadFixture(t)
	mode := doc.ElementByID("mode")
	wrapper := doc.QuerySelector(".wrapper")

	var calls []string
	mode.AddEventListener(port.EventClick, func() {
		calls = append(calls, "mode:start")
		doc.Dispatch(wrapper, port.EventClick)
		calls = append(calls, "mode:end")
	})
	wrapper.AddEventListener(port.EventClick, func() { calls = append(calls, "wrapper") })

	doc.ClickElement(mode)

	assert.Equal(t, []string{"mode:start", "mode:end", "wrapper"}, calls)
}

func TestDispatch_RecoversAfterPanickingHandler(t *testing.T) {
	doc := loadFixture(t)
	mode := doc.ElementByID("mode")
	wrapper := doc.QuerySelector(".wrapper")

	var calls []string
	mode.AddEventListener(port.EventClick, func() {
		doc.Dispatch(wrapper, port.EventClick)
		panic("handler failed")
	})
	wrapper.AddEventListener(port.EventClick, func() { calls = append(calls, "wrapper") })

	assert.Panics(t, func() { doc.ClickElement(mode) })
	assert.Empty(t, calls, "events queued behind the panic are dropped")

	doc.Dispatch(wrapper, port.EventClick)
	assert.Equal(t, []string{"wrapper"}, calls)
}

func TestClick_CheckboxTogglesAndFiresChange(t *testing.T) {
	doc := loadFixture(t)
	box := doc.ElementByID("menu-trigger")

	var seen []bool
	box.AddEventListener(port.EventChange, func() { seen = append(seen, box.Checked()) })

	require.NoError(t, doc.Click("#menu-trigger"))
	require.NoError(t, doc.Click("#menu-trigger"))

	assert.Equal(t, []bool{true, false}, seen)
}

func TestClick_MissingTarget(t *testing.T) {
	doc := loadFixture(t)

	err := doc.Click("#nope")

	assert.ErrorIs(t, err, dom.ErrElementNotFound)
}

func TestSetChecked_OnlyFiresOnChange(t *testing.T) {
	doc := loadFixture(t)
	box := doc.ElementByID("menu-trigger")

	changes := 0
	box.AddEventListener(port.EventChange, func() { changes++ })

	require.NoError(t, doc.SetChecked("#menu-trigger", false))
	require.NoError(t, doc.SetChecked("#menu-trigger", true))
	require.NoError(t, doc.SetChecked("#menu-trigger", true))

	assert.Equal(t, 1, changes)
	assert.True(t, box.Checked())
}

func TestValidSelector(t *testing.T) {
	assert.True(t, dom.ValidSelector(".lang-item, .lang-header"))
	assert.False(t, dom.ValidSelector("[[bad"))
}
